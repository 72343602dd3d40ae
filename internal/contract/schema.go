// Package contract defines the canonical TREC 1-4 contract record, the leaf
// registry that addresses every fillable field by dot-path, and the
// transformations that populate a record: structural validation, team-default
// merging and CSV row mapping.
package contract

// ContractData is the canonical nested contract record. Every leaf is
// independently optional: nil string pointers mean "not provided", booleans
// default to false, enum leaves hold one of a closed set of string values.
// A record is structurally valid in any partially-filled state.
type ContractData struct {
	Parties           Parties           `json:"parties"`
	Property          PropertyDetails   `json:"property"`
	Price             Price             `json:"price"`
	Financing         Financing         `json:"financing"`
	Leases            Leases            `json:"leases"`
	EarnestMoney      EarnestMoney      `json:"earnestMoney"`
	OptionFee         OptionFee         `json:"optionFee"`
	TitlePolicy       TitlePolicy       `json:"titlePolicy"`
	Survey            Survey            `json:"survey"`
	Objections        Objections        `json:"objections"`
	PropertyCondition PropertyCondition `json:"propertyCondition"`
	ServiceContract   ServiceContract   `json:"serviceContract"`
	Brokers           Brokers           `json:"brokers"`
	Closing           Closing           `json:"closing"`
	Possession        Possession        `json:"possession"`
	SpecialProvisions SpecialProvisions `json:"specialProvisions"`
	Settlement        Settlement        `json:"settlement"`
	Notices           Notices           `json:"notices"`
	Addenda           Addenda           `json:"addenda"`
	Attorneys         Attorneys         `json:"attorneys"`
	Execution         Execution         `json:"execution"`
}

type Parties struct {
	Buyer  *string `json:"buyer"`
	Seller *string `json:"seller"`
}

type PropertyDetails struct {
	Lot        *string `json:"lot"`
	Block      *string `json:"block"`
	Addition   *string `json:"addition"`
	City       *string `json:"city"`
	County     *string `json:"county"`
	Address    *string `json:"address"`
	ZipCode    *string `json:"zipCode"`
	Exclusions *string `json:"exclusions"`
	HOAStatus  *string `json:"hoaStatus"` // enum
}

type Price struct {
	CashPortion    *string `json:"cashPortion"`
	FinancedAmount *string `json:"financedAmount"`
	SalesPrice     *string `json:"salesPrice"`
}

type Financing struct {
	ThirdParty      bool `json:"thirdParty"`
	LoanAssumption  bool `json:"loanAssumption"`
	SellerFinancing bool `json:"sellerFinancing"`
}

type Leases struct {
	ResidentialLease         bool    `json:"residentialLease"`
	FixtureLease             bool    `json:"fixtureLease"`
	NaturalResourceLease     bool    `json:"naturalResourceLease"`
	NaturalResourceLeaseDays *string `json:"naturalResourceLeaseDays"`
}

type EarnestMoney struct {
	Amount             *string `json:"amount"`
	EscrowAgentName    *string `json:"escrowAgentName"`
	EscrowAgentAddress *string `json:"escrowAgentAddress"`
	AdditionalAmount   *string `json:"additionalAmount"`
	AdditionalDays     *string `json:"additionalDays"`
}

type OptionFee struct {
	Amount           *string `json:"amount"`
	OptionPeriodDays *string `json:"optionPeriodDays"`
}

type TitlePolicy struct {
	Payer            *string `json:"payer"` // enum
	TitleCompanyName *string `json:"titleCompanyName"`
	AmendmentStatus  *string `json:"amendmentStatus"` // enum
}

type Survey struct {
	Status       *string `json:"status"` // enum
	DeliveryDays *string `json:"deliveryDays"`
}

type Objections struct {
	DaysToObject   *string `json:"daysToObject"`
	ObjectionsText *string `json:"objectionsText"`
}

type PropertyCondition struct {
	SellerDisclosureStatus *string `json:"sellerDisclosureStatus"` // enum
	DisclosureDeliveryDays *string `json:"disclosureDeliveryDays"`
	AcceptanceStatus       *string `json:"acceptanceStatus"` // enum
	RepairsList            *string `json:"repairsList"`
}

type ServiceContract struct {
	ReimbursementAmount *string `json:"reimbursementAmount"`
}

type Brokers struct {
	ListingFirmName          *string `json:"listingFirmName"`
	ListingFirmLicense       *string `json:"listingFirmLicense"`
	ListingAssociateName     *string `json:"listingAssociateName"`
	ListingAssociateLicense  *string `json:"listingAssociateLicense"`
	ListingAssociateEmail    *string `json:"listingAssociateEmail"`
	ListingAssociatePhone    *string `json:"listingAssociatePhone"`
	ListingSupervisorName    *string `json:"listingSupervisorName"`
	ListingSupervisorLicense *string `json:"listingSupervisorLicense"`
	ListingBrokerAddress     *string `json:"listingBrokerAddress"`
	OtherFirmName            *string `json:"otherFirmName"`
	OtherFirmLicense         *string `json:"otherFirmLicense"`
	OtherAssociateName       *string `json:"otherAssociateName"`
	OtherAssociateLicense    *string `json:"otherAssociateLicense"`
	OtherAssociateEmail      *string `json:"otherAssociateEmail"`
	OtherAssociatePhone      *string `json:"otherAssociatePhone"`
	OtherBrokerRepresents    *string `json:"otherBrokerRepresents"` // enum
	DisclosedFee             *string `json:"disclosedFee"`
}

type Closing struct {
	Date *string `json:"date"`
}

type Possession struct {
	Status *string `json:"status"` // enum
}

type SpecialProvisions struct {
	Text *string `json:"text"`
}

type Settlement struct {
	SellerExpenseCap *string `json:"sellerExpenseCap"`
}

type Notices struct {
	BuyerAddress  *string `json:"buyerAddress"`
	BuyerPhone    *string `json:"buyerPhone"`
	BuyerEmail    *string `json:"buyerEmail"`
	BuyerFax      *string `json:"buyerFax"`
	SellerAddress *string `json:"sellerAddress"`
	SellerPhone   *string `json:"sellerPhone"`
	SellerEmail   *string `json:"sellerEmail"`
	SellerFax     *string `json:"sellerFax"`
}

type Addenda struct {
	ThirdPartyFinancing     bool    `json:"thirdPartyFinancing"`
	SellerFinancing         bool    `json:"sellerFinancing"`
	HOA                     bool    `json:"hoa"`
	BuyersTemporaryLease    bool    `json:"buyersTemporaryLease"`
	SellersTemporaryLease   bool    `json:"sellersTemporaryLease"`
	LeadBasedPaint          bool    `json:"leadBasedPaint"`
	EnvironmentalAssessment bool    `json:"environmentalAssessment"`
	CoastalAreaProperty     bool    `json:"coastalAreaProperty"`
	PropaneGasNotice        bool    `json:"propaneGasNotice"`
	OilGasReservation       bool    `json:"oilGasReservation"`
	Other                   bool    `json:"other"`
	OtherText               *string `json:"otherText"`
}

type Attorneys struct {
	BuyerAttorneyName   *string `json:"buyerAttorneyName"`
	BuyerAttorneyPhone  *string `json:"buyerAttorneyPhone"`
	BuyerAttorneyFax    *string `json:"buyerAttorneyFax"`
	BuyerAttorneyEmail  *string `json:"buyerAttorneyEmail"`
	SellerAttorneyName  *string `json:"sellerAttorneyName"`
	SellerAttorneyPhone *string `json:"sellerAttorneyPhone"`
	SellerAttorneyFax   *string `json:"sellerAttorneyFax"`
	SellerAttorneyEmail *string `json:"sellerAttorneyEmail"`
}

type Execution struct {
	Day                    *string `json:"day"`
	Month                  *string `json:"month"`
	Year                   *string `json:"year"`
	OptionFeeReceiptAmount *string `json:"optionFeeReceiptAmount"`
	EarnestReceiptAmount   *string `json:"earnestReceiptAmount"`
}

// Closed enum value sets. Enum leaves hold exactly one of these strings or
// are nil; anything else fails validation.
var (
	HOAStatusValues = []string{"mandatory_hoa", "no_mandatory_hoa"}

	TitlePolicyPayerValues = []string{"seller", "buyer"}

	TitleAmendmentValues = []string{
		"not_amended",
		"amended_buyer_expense",
		"amended_seller_expense",
	}

	SurveyStatusValues = []string{
		"existing_survey_provided",
		"new_survey_ordered",
		"new_survey_by_seller",
	}

	SellerDisclosureValues = []string{"received", "not_received", "not_required"}

	AcceptanceStatusValues = []string{"as_is", "as_is_with_repairs"}

	PossessionStatusValues = []string{"upon_closing", "temporary_lease"}

	OtherBrokerRepresentsValues = []string{"buyer_only", "seller_subagent"}
)
