package contract

// Defaults is the flat broker/escrow subset a team saves once and has merged
// into every new draft. Empty strings mean "no default saved".
type Defaults struct {
	ListingFirmName          string
	ListingFirmLicense       string
	ListingAssociateName     string
	ListingAssociateLicense  string
	ListingAssociateEmail    string
	ListingAssociatePhone    string
	ListingSupervisorName    string
	ListingSupervisorLicense string
	ListingBrokerAddress     string
	OtherFirmName            string
	OtherFirmLicense         string
	OtherAssociateName       string
	OtherAssociateLicense    string
	EscrowAgentName          string
}

// defaultTargets pairs each default with the dot-path it fills.
var defaultTargets = []struct {
	path  string
	value func(*Defaults) string
}{
	{"brokers.listingFirmName", func(df *Defaults) string { return df.ListingFirmName }},
	{"brokers.listingFirmLicense", func(df *Defaults) string { return df.ListingFirmLicense }},
	{"brokers.listingAssociateName", func(df *Defaults) string { return df.ListingAssociateName }},
	{"brokers.listingAssociateLicense", func(df *Defaults) string { return df.ListingAssociateLicense }},
	{"brokers.listingAssociateEmail", func(df *Defaults) string { return df.ListingAssociateEmail }},
	{"brokers.listingAssociatePhone", func(df *Defaults) string { return df.ListingAssociatePhone }},
	{"brokers.listingSupervisorName", func(df *Defaults) string { return df.ListingSupervisorName }},
	{"brokers.listingSupervisorLicense", func(df *Defaults) string { return df.ListingSupervisorLicense }},
	{"brokers.listingBrokerAddress", func(df *Defaults) string { return df.ListingBrokerAddress }},
	{"brokers.otherFirmName", func(df *Defaults) string { return df.OtherFirmName }},
	{"brokers.otherFirmLicense", func(df *Defaults) string { return df.OtherFirmLicense }},
	{"brokers.otherAssociateName", func(df *Defaults) string { return df.OtherAssociateName }},
	{"brokers.otherAssociateLicense", func(df *Defaults) string { return df.OtherAssociateLicense }},
	{"earnestMoney.escrowAgentName", func(df *Defaults) string { return df.EscrowAgentName }},
}

// ApplyDefaults fills each covered leaf of d from the team defaults, but only
// where the draft has no value yet. Explicit draft values are never
// overwritten, so the merge is idempotent: applying the same defaults twice
// equals applying them once. A nil defaults leaves d untouched.
func ApplyDefaults(df *Defaults, d *ContractData) {
	if df == nil {
		return
	}
	for _, target := range defaultTargets {
		v := target.value(df)
		if v == "" {
			continue
		}
		lf, ok := LeafByPath(target.path)
		if !ok || lf.GetString(d) != nil {
			continue
		}
		value := v
		lf.SetString(d, &value)
	}
}
