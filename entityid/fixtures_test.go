package entityid_test

import "github.com/DillonStreator/typedid/entityid"

type Customer struct {
	Name string `json:"name" yaml:"name"`
}

func (Customer) EntityTag() entityid.Tag { return "Cust" }

type Plan struct {
	Label string `json:"label"`
	Price int    `json:"price,omitempty"`
}

func (Plan) EntityTag() entityid.Tag { return "Plan" }

type Contract struct {
	CustomerID entityid.ID[Customer] `json:"customerId"`
	PlanID     *entityid.ID[Plan]    `json:"planId,omitempty"`
}

func (Contract) EntityTag() entityid.Tag { return "Cont" }

const (
	customerUUID   = "ec2ba151-7acf-43a9-bb98-6f5331992f42"
	customerPublic = "Cust_" + customerUUID
)
