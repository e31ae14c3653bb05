package models

import (
	"time"
)

// BusinessPlan is one stored plan document. Only the active one is served.
type BusinessPlan struct {
	ID        string      `json:"id" bson:"id"`
	Content   PlanContent `json:"content" bson:"content"`
	Active    bool        `json:"active" bson:"active"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}

// PlanContent is the plan payload. Stores keep it as an opaque document;
// the shape is checked only when it comes in over HTTP.
type PlanContent struct {
	ExecutiveSummary  ExecutiveSummary        `json:"executive_summary" yaml:"executive_summary" bson:"executive_summary"`
	BusinessModel     BusinessModel           `json:"business_model" yaml:"business_model" bson:"business_model"`
	Operations        Operations              `json:"operations" yaml:"operations" bson:"operations"`
	Products          Products                `json:"products" yaml:"products" bson:"products"`
	FinancialData     FinancialData           `json:"financial_data" yaml:"financial_data" bson:"financial_data"`
	Risks             []Risk                  `json:"risks" yaml:"risks" bson:"risks" validate:"required,min=1,dive"`
	InvestmentSummary []InvestmentSummaryItem `json:"investment_summary" yaml:"investment_summary" bson:"investment_summary" validate:"required,min=1,dive"`
}

type Actor struct {
	Name string `json:"name" yaml:"name" bson:"name" validate:"required"`
	Role string `json:"role" yaml:"role" bson:"role" validate:"required"`
}

type ExecutiveSummary struct {
	ProjectName  string   `json:"project_name" yaml:"project_name" bson:"project_name" validate:"required"`
	Actors       []Actor  `json:"actors" yaml:"actors" bson:"actors" validate:"required,min=1,dive"`
	Objective    string   `json:"objective" yaml:"objective" bson:"objective" validate:"required"`
	RevenueModel []string `json:"revenue_model" yaml:"revenue_model" bson:"revenue_model" validate:"dive,required"`
}

type Supplier struct {
	Name    string `json:"name" yaml:"name" bson:"name" validate:"required"`
	Product string `json:"product" yaml:"product" bson:"product" validate:"required"`
}

type BusinessModel struct {
	Suppliers []Supplier `json:"suppliers" yaml:"suppliers" bson:"suppliers" validate:"required,min=1,dive"`
}

type Operations struct {
	AtabridgeOps []string `json:"atabridge_ops" yaml:"atabridge_ops" bson:"atabridge_ops" validate:"dive,required"`
	ErtugOps     []string `json:"ertug_ops" yaml:"ertug_ops" bson:"ertug_ops" validate:"dive,required"`
	FiyuuOps     []string `json:"fiyuu_ops" yaml:"fiyuu_ops" bson:"fiyuu_ops" validate:"dive,required"`
}

// ImageLink marks whether a product entry has an uploaded picture.
type ImageLink struct {
	ImageUploaded bool    `json:"image_uploaded" yaml:"image_uploaded" bson:"image_uploaded"`
	ImageID       *string `json:"image_id" yaml:"image_id" bson:"image_id"`
}

type Equipment struct {
	Name      string `json:"name" yaml:"name" bson:"name" validate:"required"`
	Supplier  string `json:"supplier" yaml:"supplier" bson:"supplier" validate:"required"`
	ImageLink `yaml:",inline" bson:",inline"`
}

type Specification struct {
	Label string `json:"label" yaml:"label" bson:"label" validate:"required"`
	Value string `json:"value" yaml:"value" bson:"value" validate:"required"`
}

type EMoped struct {
	Model     string          `json:"model" yaml:"model" bson:"model" validate:"required"`
	Specs     []Specification `json:"specs" yaml:"specs" bson:"specs" validate:"dive"`
	ImageLink `yaml:",inline" bson:",inline"`
}

type Battery struct {
	Features  []string `json:"features" yaml:"features" bson:"features" validate:"dive,required"`
	ImageLink `yaml:",inline" bson:",inline"`
}

type Products struct {
	Equipment []Equipment `json:"equipment" yaml:"equipment" bson:"equipment" validate:"dive"`
	EMoped    EMoped      `json:"emoped" yaml:"emoped" bson:"emoped"`
	Battery   Battery     `json:"battery" yaml:"battery" bson:"battery"`
}

type Investment struct {
	Item   string `json:"item" yaml:"item" bson:"item" validate:"required"`
	Amount string `json:"amount" yaml:"amount" bson:"amount" validate:"required"`
}

type FinancialYear struct {
	Year   string `json:"year" yaml:"year" bson:"year" validate:"required"`
	Sales  int64  `json:"sales" yaml:"sales" bson:"sales"`
	Costs  int64  `json:"costs" yaml:"costs" bson:"costs"`
	Gross  int64  `json:"gross" yaml:"gross" bson:"gross"`
	Opex   int64  `json:"opex" yaml:"opex" bson:"opex"`
	Ebitda int64  `json:"ebitda" yaml:"ebitda" bson:"ebitda"`
}

type CompanyFinancials struct {
	Financials []FinancialYear `json:"financials" yaml:"financials" bson:"financials" validate:"dive"`
}

type AtabridgeFinancials struct {
	Investment string `json:"investment" yaml:"investment" bson:"investment"`
	Revenue    string `json:"revenue" yaml:"revenue" bson:"revenue"`
	Model      string `json:"model" yaml:"model" bson:"model"`
}

type ErtugFinancials struct {
	Investments []Investment    `json:"investments" yaml:"investments" bson:"investments" validate:"dive"`
	Financials  []FinancialYear `json:"financials" yaml:"financials" bson:"financials" validate:"dive"`
}

type FinancialData struct {
	Atabridge  AtabridgeFinancials `json:"atabridge" yaml:"atabridge" bson:"atabridge"`
	Ertug      ErtugFinancials     `json:"ertug" yaml:"ertug" bson:"ertug"`
	FiyuuSales CompanyFinancials   `json:"fiyuu_sales" yaml:"fiyuu_sales" bson:"fiyuu_sales"`
	FiyuuSwap  CompanyFinancials   `json:"fiyuu_swap" yaml:"fiyuu_swap" bson:"fiyuu_swap"`
}

type Risk struct {
	Category string `json:"category" yaml:"category" bson:"category" validate:"required"`
	Risk     string `json:"risk" yaml:"risk" bson:"risk" validate:"required"`
}

type InvestmentSummaryItem struct {
	Actor      string `json:"actor" yaml:"actor" bson:"actor" validate:"required"`
	Investment string `json:"investment" yaml:"investment" bson:"investment"`
	Model      string `json:"model" yaml:"model" bson:"model"`
	Result     string `json:"result" yaml:"result" bson:"result"`
}
