package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/DillonStreator/typedid/config"
	"github.com/DillonStreator/typedid/domain"
	"github.com/DillonStreator/typedid/entityid"
	"github.com/DillonStreator/typedid/jwt"
	"github.com/DillonStreator/typedid/passwords"
	"github.com/DillonStreator/typedid/storage"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

type userStore interface {
	Save(ctx context.Context, user *entityid.Identified[domain.User]) error
	FindByID(ctx context.Context, id entityid.ID[domain.User]) (entityid.Identified[domain.User], error)
}

type todoStore interface {
	Create(ctx context.Context, todo entityid.Identified[domain.Todo]) error
	Update(ctx context.Context, todo entityid.Identified[domain.Todo]) error
	Delete(ctx context.Context, id entityid.ID[domain.Todo]) error
	Get(ctx context.Context, id entityid.ID[domain.Todo]) (entityid.Identified[domain.Todo], error)
	ListByUser(ctx context.Context, userID entityid.ID[domain.User]) (domain.Todos, error)
}

type rates struct {
	global       limiter.Rate
	userCreation limiter.Rate
	todoCreation limiter.Rate
}

var defaultRates = rates{
	global:       limiter.Rate{Period: 1 * time.Second, Limit: 1},
	userCreation: limiter.Rate{Period: 1 * time.Hour, Limit: 5},
	todoCreation: limiter.Rate{Period: 1 * time.Hour, Limit: 100},
}

type server struct {
	users  userStore
	todos  todoStore
	signer *jwt.Signer
	log    *slog.Logger
	rates  rates
	now    func() time.Time
}

type userContextKey string

var USER_CONTEXT_KEY = userContextKey("user")

func getUserFromRequest(r *http.Request) *entityid.Identified[domain.User] {
	return r.Context().Value(USER_CONTEXT_KEY).(*entityid.Identified[domain.User])
}

func newInMemoryLimiterMiddleware(r limiter.Rate) *stdlib.Middleware {
	store := memory.NewStore()
	limiter := limiter.New(store, r)
	return stdlib.NewMiddleware(limiter)
}

type userInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userCreated struct {
	User  entityid.Identified[domain.User] `json:"user"`
	Token string                           `json:"token"`
}

type todoInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) respond(rw http.ResponseWriter, status int, v interface{}) {
	bytes, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encoding response", slog.Any("err", err))
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(bytes)
}

func (s *server) fail(rw http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entityid.ErrPrefixMismatch), errors.Is(err, entityid.ErrMalformedValue):
		s.respond(rw, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		s.respond(rw, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		s.log.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("err", err),
		)
		s.respond(rw, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeStrict(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func (s *server) mux() http.Handler {
	r := chi.NewRouter()

	requestLimiter := newInMemoryLimiterMiddleware(s.rates.global)
	r.Use(requestLimiter.Handler)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			rw.Header().Add("Content-Type", "application/json")
			next.ServeHTTP(rw, r)
		})
	})

	r.Get("/", func(rw http.ResponseWriter, r *http.Request) {
		http.Redirect(rw, r, "/status", http.StatusPermanentRedirect)
	})
	r.Get("/status", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
		rw.Write([]byte("🌈"))
	})
	r.Get("/schema/todo", func(rw http.ResponseWriter, r *http.Request) {
		s.respond(rw, http.StatusOK, entityid.Identified[domain.Todo]{}.JSONSchema())
	})

	r.Route("/users", func(usersRouter chi.Router) {
		userCreationLimiter := newInMemoryLimiterMiddleware(s.rates.userCreation)
		usersRouter.Use(userCreationLimiter.Handler)
		usersRouter.Post("/", s.createUser)
	})

	r.Route("/todos", func(todosRouter chi.Router) {
		todosRouter.Use(s.authenticate)

		todosRouter.Get("/", s.listTodos)
		todoCreationLimiter := newInMemoryLimiterMiddleware(s.rates.todoCreation)
		todosRouter.With(todoCreationLimiter.Handler).Post("/", s.createTodo)
		todosRouter.Put("/{todoID}", s.updateTodo)
		todosRouter.Delete("/{todoID}", s.deleteTodo)
	})

	return r
}

func (s *server) createUser(rw http.ResponseWriter, r *http.Request) {
	var input userInput
	if err := decodeStrict(r, &input); err != nil {
		s.respond(rw, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if input.Email == "" {
		s.respond(rw, http.StatusBadRequest, errorResponse{Error: "email is required"})
		return
	}

	hashed, err := passwords.Hash(input.Password)
	if errors.Is(err, passwords.ErrTooShort) {
		s.respond(rw, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		s.fail(rw, r, err)
		return
	}

	now := s.now()
	user := entityid.NewIdentified(entityid.New[domain.User](), domain.User{
		Email:      input.Email,
		Password:   hashed,
		CreatedAt:  now,
		LastSeenAt: now,
	})
	if err := s.users.Save(r.Context(), &user); err != nil {
		s.fail(rw, r, err)
		return
	}

	token, err := s.signer.Sign(user)
	if err != nil {
		s.fail(rw, r, err)
		return
	}

	s.log.Info("user created", slog.String("user_id", user.ID().String()))
	s.respond(rw, http.StatusCreated, userCreated{User: user, Token: token})
}

func (s *server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			s.respond(rw, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}

		claims, err := s.signer.Verify(token)
		if err != nil {
			s.log.Debug("rejected token", slog.Any("err", err))
			s.respond(rw, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			return
		}

		user, err := s.users.FindByID(r.Context(), claims.UserID)
		if errors.Is(err, storage.ErrNotFound) {
			s.respond(rw, http.StatusUnauthorized, errorResponse{Error: "unknown user"})
			return
		}
		if err != nil {
			s.fail(rw, r, err)
			return
		}

		user.Record().LastSeenAt = s.now()
		if err := s.users.Save(r.Context(), &user); err != nil {
			s.fail(rw, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), USER_CONTEXT_KEY, &user)
		next.ServeHTTP(rw, r.WithContext(ctx))
	})
}

func (s *server) listTodos(rw http.ResponseWriter, r *http.Request) {
	user := getUserFromRequest(r)

	todos, err := s.todos.ListByUser(r.Context(), user.ID())
	if err != nil {
		s.fail(rw, r, err)
		return
	}

	s.respond(rw, http.StatusOK, todos)
}

func (s *server) createTodo(rw http.ResponseWriter, r *http.Request) {
	user := getUserFromRequest(r)

	var input todoInput
	if err := decodeStrict(r, &input); err != nil {
		s.respond(rw, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	now := s.now()
	todo := entityid.NewIdentified(entityid.New[domain.Todo](), domain.Todo{
		UserID:      user.ID(),
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err := s.todos.Create(r.Context(), todo); err != nil {
		s.fail(rw, r, err)
		return
	}

	s.respond(rw, http.StatusCreated, todo)
}

func todoIDParam(r *http.Request) (entityid.ID[domain.Todo], error) {
	return entityid.Parse[domain.Todo](chi.URLParam(r, "todoID"))
}

func (s *server) updateTodo(rw http.ResponseWriter, r *http.Request) {
	user := getUserFromRequest(r)

	todoID, err := todoIDParam(r)
	if err != nil {
		s.fail(rw, r, err)
		return
	}

	todo, err := s.todos.Get(r.Context(), todoID)
	if err != nil {
		s.fail(rw, r, err)
		return
	}
	record := todo.Record()
	if record.UserID != user.ID() {
		s.fail(rw, r, fmt.Errorf("%w: %s", storage.ErrNotFound, todoID))
		return
	}

	input := todoInput{
		Title:       record.Title,
		Description: record.Description,
		Completed:   record.Completed,
	}
	if err := decodeStrict(r, &input); err != nil {
		s.respond(rw, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	record.Title = input.Title
	record.Description = input.Description
	record.Completed = input.Completed
	record.UpdatedAt = s.now()

	if err := s.todos.Update(r.Context(), todo); err != nil {
		s.fail(rw, r, err)
		return
	}

	s.respond(rw, http.StatusOK, todo)
}

func (s *server) deleteTodo(rw http.ResponseWriter, r *http.Request) {
	user := getUserFromRequest(r)

	todoID, err := todoIDParam(r)
	if err != nil {
		s.fail(rw, r, err)
		return
	}

	todos, err := s.todos.ListByUser(r.Context(), user.ID())
	if err != nil {
		s.fail(rw, r, err)
		return
	}
	if todos.FindIndexByID(todoID) == -1 {
		s.fail(rw, r, fmt.Errorf("%w: %s", storage.ErrNotFound, todoID))
		return
	}

	if err := s.todos.Delete(r.Context(), todoID); err != nil {
		s.fail(rw, r, err)
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}

func startServer(cfg config.Config, s *server) error {
	return http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), s.mux())
}
