package contract

// FieldMapEntry pairs a leaf dot-path with the literal name of the matching
// form field inside the TREC 1-4 PDF template.
type FieldMapEntry struct {
	Path     string
	PDFField string
}

// FieldMap is the projection table from ContractData onto the TREC 1-4
// template. The PDF field names are whatever the form's author left embedded
// in the template, mostly truncated fragments of the surrounding paragraph
// text plus the odd auto-generated checkbox name. They are template-specific:
// regenerate this table with `fieldmap list` against the actual template
// instead of guessing, and run `fieldmap verify` after any template swap.
var FieldMap = []FieldMapEntry{
	// 1. PARTIES
	{"parties.seller", "1 PARTIES The parties to this contract are"},
	{"parties.buyer", "Seller and"},

	// 2. PROPERTY
	{"property.lot", "A LAND Lot"},
	{"property.block", "Block"},
	{"property.addition", "Addition City of"},
	{"property.city", "City of"},
	{"property.county", "County of"},
	{"property.address", "Texas known as"},
	{"property.zipCode", "addresszip code or as described on attached exhibit"},
	{"property.exclusions", "D EXCLUSIONS The following improvements and accessories will be retained by Seller and"},
	{"property.hoaStatus", "Group HOA Membership"},

	// 3. SALES PRICE
	{"price.cashPortion", "A Cash portion of Sales Price payable by Buyer at closing"},
	{"price.financedAmount", "B Sum of all financing described in the attached"},
	{"price.salesPrice", "C Sales Price Sum of A and B"},

	// 4. FINANCING
	{"financing.thirdParty", "Check Box Third Party Financing Addendum"},
	{"financing.loanAssumption", "Check Box Loan Assumption Addendum"},
	{"financing.sellerFinancing", "Check Box Seller Financing Addendum"},

	// 5. LEASES
	{"leases.residentialLease", "Check Box Residential Lease"},
	{"leases.fixtureLease", "Check Box Fixture Lease"},
	{"leases.naturalResourceLease", "Check Box Natural Resource Lease"},
	{"leases.naturalResourceLeaseDays", "deliver to Buyer a copy of all the Natural Resource Leases within"},

	// 6. EARNEST MONEY AND TERMINATION OPTION
	{"earnestMoney.amount", "A DELIVERY OF EARNEST MONEY AND OPTION FEE Within 3 days after the Effective Date"},
	{"earnestMoney.escrowAgentName", "Buyer shall deliver to"},
	{"earnestMoney.escrowAgentAddress", "escrow agent at"},
	{"earnestMoney.additionalAmount", "earnest money of"},
	{"earnestMoney.additionalDays", "additional earnest money of  with escrow agent within"},
	{"optionFee.amount", "and an option fee of"},
	{"optionFee.optionPeriodDays", "days after the Effective Date of this contract"},

	// 6A. TITLE POLICY
	{"titlePolicy.payer", "Group Title Policy Expense"},
	{"titlePolicy.titleCompanyName", "furnish to Buyer at"},
	{"titlePolicy.amendmentStatus", "Group Survey Amendment"},

	// 6C. SURVEY
	{"survey.status", "Group Survey"},
	{"survey.deliveryDays", "existing survey of the Property and a Residential Real Property Affidavit within"},

	// 6D. OBJECTIONS
	{"objections.daysToObject", "Buyer has"},
	{"objections.objectionsText", "Buyer may object in writing to defects exceptions or encumbrances to title"},

	// 7. PROPERTY CONDITION
	{"propertyCondition.sellerDisclosureStatus", "Group Seller Disclosure Notice"},
	{"propertyCondition.disclosureDeliveryDays", "Seller shall deliver the Notice to Buyer within"},
	{"propertyCondition.acceptanceStatus", "Group Acceptance of Property Condition"},
	{"propertyCondition.repairsList", "provided Seller at Sellers expense shall complete the following specific repairs and treatments"},
	{"serviceContract.reimbursementAmount", "reimburse Buyer for the cost of a residential service contract in an amount not exceeding"},

	// 8. BROKERS AND SALES AGENTS
	{"brokers.listingFirmName", "Listing Broker Firm"},
	{"brokers.listingFirmLicense", "License No"},
	{"brokers.listingAssociateName", "Listing Associates Name"},
	{"brokers.listingAssociateLicense", "License No_3"},
	{"brokers.listingAssociateEmail", "Listing Associates Email Address"},
	{"brokers.listingAssociatePhone", "Phone_2"},
	{"brokers.listingSupervisorName", "Licensed Supervisor of Listing Associate"},
	{"brokers.listingSupervisorLicense", "License No_4"},
	{"brokers.listingBrokerAddress", "Listing Brokers Office Address"},
	{"brokers.otherFirmName", "Other Broker Firm"},
	{"brokers.otherFirmLicense", "License No_2"},
	{"brokers.otherAssociateName", "Associates Name"},
	{"brokers.otherAssociateLicense", "License No_5"},
	{"brokers.otherAssociateEmail", "Associates Email Address"},
	{"brokers.otherAssociatePhone", "Phone"},
	{"brokers.otherBrokerRepresents", "Group Other Broker Represents"},
	{"brokers.disclosedFee", "disclosed fee of"},

	// 9. CLOSING
	{"closing.date", "A The closing of the sale will be on or before"},

	// 10. POSSESSION
	{"possession.status", "Group Possession"},

	// 11. SPECIAL PROVISIONS
	{"specialProvisions.text", "11 SPECIAL PROVISIONS Insert only factual statements and business details applicable to"},

	// 12. SETTLEMENT AND OTHER EXPENSES
	{"settlement.sellerExpenseCap", "b Seller shall also pay an amount not to exceed"},

	// 21. NOTICES
	{"notices.buyerAddress", "To Buyer at"},
	{"notices.buyerPhone", "Phone_3"},
	{"notices.buyerEmail", "EmailFax"},
	{"notices.buyerFax", "EmailFax_2"},
	{"notices.sellerAddress", "To Seller at"},
	{"notices.sellerPhone", "Phone_4"},
	{"notices.sellerEmail", "EmailFax_3"},
	{"notices.sellerFax", "EmailFax_4"},

	// 22. AGREEMENT OF PARTIES (addenda checkboxes)
	{"addenda.thirdPartyFinancing", "Third Party Financing Addendum"},
	{"addenda.sellerFinancing", "Seller Financing Addendum"},
	{"addenda.hoa", "Addendum for Property Subject to Mandatory Membership in a Property"},
	{"addenda.buyersTemporaryLease", "Buyers Temporary Residential Lease"},
	{"addenda.sellersTemporaryLease", "Sellers Temporary Residential Lease"},
	{"addenda.leadBasedPaint", "Addendum for Sellers Disclosure of Information on LeadBased Paint and LeadBased"},
	{"addenda.environmentalAssessment", "Environmental Assessment Threatened or Endangered Species and Wetlands"},
	{"addenda.coastalAreaProperty", "Addendum for Coastal Area Property"},
	{"addenda.propaneGasNotice", "Addendum Containing Notice of Obligation to Pay Improvement District"},
	{"addenda.oilGasReservation", "Addendum for Reservation of Oil Gas and Other Minerals"},
	{"addenda.other", "Other eg Survey"},
	{"addenda.otherText", "Other eg Survey Text"},

	// ATTORNEYS
	{"attorneys.buyerAttorneyName", "Attorney is"},
	{"attorneys.buyerAttorneyPhone", "Phone_5"},
	{"attorneys.buyerAttorneyFax", "Fax"},
	{"attorneys.buyerAttorneyEmail", "Email"},
	{"attorneys.sellerAttorneyName", "Attorney is_2"},
	{"attorneys.sellerAttorneyPhone", "Phone_6"},
	{"attorneys.sellerAttorneyFax", "Fax_2"},
	{"attorneys.sellerAttorneyEmail", "Email_2"},

	// EXECUTION
	{"execution.day", "EXECUTED the"},
	{"execution.month", "day of"},
	{"execution.year", "20"},
	{"execution.optionFeeReceiptAmount", "Option Fee in the form of"},
	{"execution.earnestReceiptAmount", "Earnest Money in the form of"},
}

// EnumOptions maps each enum leaf's values to the literal option names of the
// corresponding radio button group in the template. Like the field names,
// option names are an artifact of how the form was authored.
var EnumOptions = map[string]map[string]string{
	"property.hoaStatus": {
		"mandatory_hoa":    "is",
		"no_mandatory_hoa": "is not",
	},
	"titlePolicy.payer": {
		"seller": "Sellers",
		"buyer":  "Buyers",
	},
	"titlePolicy.amendmentStatus": {
		"not_amended":            "will not be amended",
		"amended_buyer_expense":  "will be amended at Buyers expense",
		"amended_seller_expense": "will be amended at Sellers expense",
	},
	"survey.status": {
		"existing_survey_provided": "Existing Survey",
		"new_survey_ordered":       "New Survey at Buyers Expense",
		"new_survey_by_seller":     "New Survey at Sellers Expense",
	},
	"propertyCondition.sellerDisclosureStatus": {
		"received":     "Buyer has received the Notice",
		"not_received": "Buyer has not received the Notice",
		"not_required": "The Notice is not required",
	},
	"propertyCondition.acceptanceStatus": {
		"as_is":              "As Is",
		"as_is_with_repairs": "As Is with repairs",
	},
	"possession.status": {
		"upon_closing":    "upon closing and funding",
		"temporary_lease": "according to a temporary residential lease",
	},
	"brokers.otherBrokerRepresents": {
		"buyer_only":      "Buyer only as Buyers agent",
		"seller_subagent": "Seller as Listing Brokers subagent",
	},
}

// PDFFieldFor returns the template field name mapped to a dot-path.
func PDFFieldFor(path string) (string, bool) {
	for _, entry := range FieldMap {
		if entry.Path == path {
			return entry.PDFField, true
		}
	}
	return "", false
}
