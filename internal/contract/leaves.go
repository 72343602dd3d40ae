package contract

// Kind classifies a leaf of ContractData.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindEnum
)

// Leaf is the typed address of one ContractData field. The registry below is
// the single source of truth for dot-paths: the validator, the CSV mapper and
// the PDF projection all iterate it instead of poking at nested structs with
// string keys.
type Leaf struct {
	Path string
	Kind Kind
	Enum []string

	GetString func(*ContractData) *string
	SetString func(*ContractData, *string)
	GetBool   func(*ContractData) bool
	SetBool   func(*ContractData, bool)
}

func strLeaf(path string, f func(*ContractData) **string) Leaf {
	return Leaf{
		Path:      path,
		Kind:      KindString,
		GetString: func(d *ContractData) *string { return *f(d) },
		SetString: func(d *ContractData, v *string) { *f(d) = v },
	}
}

func enumLeaf(path string, values []string, f func(*ContractData) **string) Leaf {
	lf := strLeaf(path, f)
	lf.Kind = KindEnum
	lf.Enum = values
	return lf
}

func boolLeaf(path string, f func(*ContractData) *bool) Leaf {
	return Leaf{
		Path:    path,
		Kind:    KindBool,
		GetBool: func(d *ContractData) bool { return *f(d) },
		SetBool: func(d *ContractData, v bool) { *f(d) = v },
	}
}

var leaves = []Leaf{
	// parties
	strLeaf("parties.buyer", func(d *ContractData) **string { return &d.Parties.Buyer }),
	strLeaf("parties.seller", func(d *ContractData) **string { return &d.Parties.Seller }),

	// property
	strLeaf("property.lot", func(d *ContractData) **string { return &d.Property.Lot }),
	strLeaf("property.block", func(d *ContractData) **string { return &d.Property.Block }),
	strLeaf("property.addition", func(d *ContractData) **string { return &d.Property.Addition }),
	strLeaf("property.city", func(d *ContractData) **string { return &d.Property.City }),
	strLeaf("property.county", func(d *ContractData) **string { return &d.Property.County }),
	strLeaf("property.address", func(d *ContractData) **string { return &d.Property.Address }),
	strLeaf("property.zipCode", func(d *ContractData) **string { return &d.Property.ZipCode }),
	strLeaf("property.exclusions", func(d *ContractData) **string { return &d.Property.Exclusions }),
	enumLeaf("property.hoaStatus", HOAStatusValues, func(d *ContractData) **string { return &d.Property.HOAStatus }),

	// price
	strLeaf("price.cashPortion", func(d *ContractData) **string { return &d.Price.CashPortion }),
	strLeaf("price.financedAmount", func(d *ContractData) **string { return &d.Price.FinancedAmount }),
	strLeaf("price.salesPrice", func(d *ContractData) **string { return &d.Price.SalesPrice }),

	// financing
	boolLeaf("financing.thirdParty", func(d *ContractData) *bool { return &d.Financing.ThirdParty }),
	boolLeaf("financing.loanAssumption", func(d *ContractData) *bool { return &d.Financing.LoanAssumption }),
	boolLeaf("financing.sellerFinancing", func(d *ContractData) *bool { return &d.Financing.SellerFinancing }),

	// leases
	boolLeaf("leases.residentialLease", func(d *ContractData) *bool { return &d.Leases.ResidentialLease }),
	boolLeaf("leases.fixtureLease", func(d *ContractData) *bool { return &d.Leases.FixtureLease }),
	boolLeaf("leases.naturalResourceLease", func(d *ContractData) *bool { return &d.Leases.NaturalResourceLease }),
	strLeaf("leases.naturalResourceLeaseDays", func(d *ContractData) **string { return &d.Leases.NaturalResourceLeaseDays }),

	// earnestMoney
	strLeaf("earnestMoney.amount", func(d *ContractData) **string { return &d.EarnestMoney.Amount }),
	strLeaf("earnestMoney.escrowAgentName", func(d *ContractData) **string { return &d.EarnestMoney.EscrowAgentName }),
	strLeaf("earnestMoney.escrowAgentAddress", func(d *ContractData) **string { return &d.EarnestMoney.EscrowAgentAddress }),
	strLeaf("earnestMoney.additionalAmount", func(d *ContractData) **string { return &d.EarnestMoney.AdditionalAmount }),
	strLeaf("earnestMoney.additionalDays", func(d *ContractData) **string { return &d.EarnestMoney.AdditionalDays }),

	// optionFee
	strLeaf("optionFee.amount", func(d *ContractData) **string { return &d.OptionFee.Amount }),
	strLeaf("optionFee.optionPeriodDays", func(d *ContractData) **string { return &d.OptionFee.OptionPeriodDays }),

	// titlePolicy
	enumLeaf("titlePolicy.payer", TitlePolicyPayerValues, func(d *ContractData) **string { return &d.TitlePolicy.Payer }),
	strLeaf("titlePolicy.titleCompanyName", func(d *ContractData) **string { return &d.TitlePolicy.TitleCompanyName }),
	enumLeaf("titlePolicy.amendmentStatus", TitleAmendmentValues, func(d *ContractData) **string { return &d.TitlePolicy.AmendmentStatus }),

	// survey
	enumLeaf("survey.status", SurveyStatusValues, func(d *ContractData) **string { return &d.Survey.Status }),
	strLeaf("survey.deliveryDays", func(d *ContractData) **string { return &d.Survey.DeliveryDays }),

	// objections
	strLeaf("objections.daysToObject", func(d *ContractData) **string { return &d.Objections.DaysToObject }),
	strLeaf("objections.objectionsText", func(d *ContractData) **string { return &d.Objections.ObjectionsText }),

	// propertyCondition
	enumLeaf("propertyCondition.sellerDisclosureStatus", SellerDisclosureValues, func(d *ContractData) **string { return &d.PropertyCondition.SellerDisclosureStatus }),
	strLeaf("propertyCondition.disclosureDeliveryDays", func(d *ContractData) **string { return &d.PropertyCondition.DisclosureDeliveryDays }),
	enumLeaf("propertyCondition.acceptanceStatus", AcceptanceStatusValues, func(d *ContractData) **string { return &d.PropertyCondition.AcceptanceStatus }),
	strLeaf("propertyCondition.repairsList", func(d *ContractData) **string { return &d.PropertyCondition.RepairsList }),

	// serviceContract
	strLeaf("serviceContract.reimbursementAmount", func(d *ContractData) **string { return &d.ServiceContract.ReimbursementAmount }),

	// brokers
	strLeaf("brokers.listingFirmName", func(d *ContractData) **string { return &d.Brokers.ListingFirmName }),
	strLeaf("brokers.listingFirmLicense", func(d *ContractData) **string { return &d.Brokers.ListingFirmLicense }),
	strLeaf("brokers.listingAssociateName", func(d *ContractData) **string { return &d.Brokers.ListingAssociateName }),
	strLeaf("brokers.listingAssociateLicense", func(d *ContractData) **string { return &d.Brokers.ListingAssociateLicense }),
	strLeaf("brokers.listingAssociateEmail", func(d *ContractData) **string { return &d.Brokers.ListingAssociateEmail }),
	strLeaf("brokers.listingAssociatePhone", func(d *ContractData) **string { return &d.Brokers.ListingAssociatePhone }),
	strLeaf("brokers.listingSupervisorName", func(d *ContractData) **string { return &d.Brokers.ListingSupervisorName }),
	strLeaf("brokers.listingSupervisorLicense", func(d *ContractData) **string { return &d.Brokers.ListingSupervisorLicense }),
	strLeaf("brokers.listingBrokerAddress", func(d *ContractData) **string { return &d.Brokers.ListingBrokerAddress }),
	strLeaf("brokers.otherFirmName", func(d *ContractData) **string { return &d.Brokers.OtherFirmName }),
	strLeaf("brokers.otherFirmLicense", func(d *ContractData) **string { return &d.Brokers.OtherFirmLicense }),
	strLeaf("brokers.otherAssociateName", func(d *ContractData) **string { return &d.Brokers.OtherAssociateName }),
	strLeaf("brokers.otherAssociateLicense", func(d *ContractData) **string { return &d.Brokers.OtherAssociateLicense }),
	strLeaf("brokers.otherAssociateEmail", func(d *ContractData) **string { return &d.Brokers.OtherAssociateEmail }),
	strLeaf("brokers.otherAssociatePhone", func(d *ContractData) **string { return &d.Brokers.OtherAssociatePhone }),
	enumLeaf("brokers.otherBrokerRepresents", OtherBrokerRepresentsValues, func(d *ContractData) **string { return &d.Brokers.OtherBrokerRepresents }),
	strLeaf("brokers.disclosedFee", func(d *ContractData) **string { return &d.Brokers.DisclosedFee }),

	// closing
	strLeaf("closing.date", func(d *ContractData) **string { return &d.Closing.Date }),

	// possession
	enumLeaf("possession.status", PossessionStatusValues, func(d *ContractData) **string { return &d.Possession.Status }),

	// specialProvisions
	strLeaf("specialProvisions.text", func(d *ContractData) **string { return &d.SpecialProvisions.Text }),

	// settlement
	strLeaf("settlement.sellerExpenseCap", func(d *ContractData) **string { return &d.Settlement.SellerExpenseCap }),

	// notices
	strLeaf("notices.buyerAddress", func(d *ContractData) **string { return &d.Notices.BuyerAddress }),
	strLeaf("notices.buyerPhone", func(d *ContractData) **string { return &d.Notices.BuyerPhone }),
	strLeaf("notices.buyerEmail", func(d *ContractData) **string { return &d.Notices.BuyerEmail }),
	strLeaf("notices.buyerFax", func(d *ContractData) **string { return &d.Notices.BuyerFax }),
	strLeaf("notices.sellerAddress", func(d *ContractData) **string { return &d.Notices.SellerAddress }),
	strLeaf("notices.sellerPhone", func(d *ContractData) **string { return &d.Notices.SellerPhone }),
	strLeaf("notices.sellerEmail", func(d *ContractData) **string { return &d.Notices.SellerEmail }),
	strLeaf("notices.sellerFax", func(d *ContractData) **string { return &d.Notices.SellerFax }),

	// addenda
	boolLeaf("addenda.thirdPartyFinancing", func(d *ContractData) *bool { return &d.Addenda.ThirdPartyFinancing }),
	boolLeaf("addenda.sellerFinancing", func(d *ContractData) *bool { return &d.Addenda.SellerFinancing }),
	boolLeaf("addenda.hoa", func(d *ContractData) *bool { return &d.Addenda.HOA }),
	boolLeaf("addenda.buyersTemporaryLease", func(d *ContractData) *bool { return &d.Addenda.BuyersTemporaryLease }),
	boolLeaf("addenda.sellersTemporaryLease", func(d *ContractData) *bool { return &d.Addenda.SellersTemporaryLease }),
	boolLeaf("addenda.leadBasedPaint", func(d *ContractData) *bool { return &d.Addenda.LeadBasedPaint }),
	boolLeaf("addenda.environmentalAssessment", func(d *ContractData) *bool { return &d.Addenda.EnvironmentalAssessment }),
	boolLeaf("addenda.coastalAreaProperty", func(d *ContractData) *bool { return &d.Addenda.CoastalAreaProperty }),
	boolLeaf("addenda.propaneGasNotice", func(d *ContractData) *bool { return &d.Addenda.PropaneGasNotice }),
	boolLeaf("addenda.oilGasReservation", func(d *ContractData) *bool { return &d.Addenda.OilGasReservation }),
	boolLeaf("addenda.other", func(d *ContractData) *bool { return &d.Addenda.Other }),
	strLeaf("addenda.otherText", func(d *ContractData) **string { return &d.Addenda.OtherText }),

	// attorneys
	strLeaf("attorneys.buyerAttorneyName", func(d *ContractData) **string { return &d.Attorneys.BuyerAttorneyName }),
	strLeaf("attorneys.buyerAttorneyPhone", func(d *ContractData) **string { return &d.Attorneys.BuyerAttorneyPhone }),
	strLeaf("attorneys.buyerAttorneyFax", func(d *ContractData) **string { return &d.Attorneys.BuyerAttorneyFax }),
	strLeaf("attorneys.buyerAttorneyEmail", func(d *ContractData) **string { return &d.Attorneys.BuyerAttorneyEmail }),
	strLeaf("attorneys.sellerAttorneyName", func(d *ContractData) **string { return &d.Attorneys.SellerAttorneyName }),
	strLeaf("attorneys.sellerAttorneyPhone", func(d *ContractData) **string { return &d.Attorneys.SellerAttorneyPhone }),
	strLeaf("attorneys.sellerAttorneyFax", func(d *ContractData) **string { return &d.Attorneys.SellerAttorneyFax }),
	strLeaf("attorneys.sellerAttorneyEmail", func(d *ContractData) **string { return &d.Attorneys.SellerAttorneyEmail }),

	// execution
	strLeaf("execution.day", func(d *ContractData) **string { return &d.Execution.Day }),
	strLeaf("execution.month", func(d *ContractData) **string { return &d.Execution.Month }),
	strLeaf("execution.year", func(d *ContractData) **string { return &d.Execution.Year }),
	strLeaf("execution.optionFeeReceiptAmount", func(d *ContractData) **string { return &d.Execution.OptionFeeReceiptAmount }),
	strLeaf("execution.earnestReceiptAmount", func(d *ContractData) **string { return &d.Execution.EarnestReceiptAmount }),
}

var leafIndex = buildLeafIndex()

func buildLeafIndex() map[string]*Leaf {
	idx := make(map[string]*Leaf, len(leaves))
	for i := range leaves {
		idx[leaves[i].Path] = &leaves[i]
	}
	return idx
}

// Leaves returns the full leaf registry in declaration order.
func Leaves() []Leaf {
	return leaves
}

// LeafByPath looks up a leaf by its dot-path. The second return is false for
// unknown paths.
func LeafByPath(path string) (*Leaf, bool) {
	lf, ok := leafIndex[path]
	return lf, ok
}
