package model

// Fixed catalogs backing the filter sidebar and the mock-data generator. Leaf
// ids are the canonical lowercase tokens stored on terminals; labels are what
// the dashboard renders.

// Acquirers is the flat catalog of acquiring banks.
var Acquirers = []FacetOption{
	{ID: "cba", Label: "CBA"},
	{ID: "anz", Label: "ANZ"},
	{ID: "westpac", Label: "Westpac"},
	{ID: "nab", Label: "NAB"},
	{ID: "fiserv", Label: "Fiserv"},
	{ID: "first_data", Label: "First Data"},
}

// OrbitTypes is the flat catalog of terminal product tiers.
var OrbitTypes = []FacetOption{
	{ID: "standalone", Label: "Standalone"},
	{ID: "standalone_plus", Label: "Standalone Plus"},
	{ID: "integrated", Label: "Integrated"},
	{ID: "integrated_plus", Label: "Integrated Plus"},
}

// Hardware groups terminal models by vendor.
var Hardware = []FacetOption{
	{ID: "ingenico", Label: "Ingenico", Children: []FacetOption{
		{ID: "move5000", Label: "Move 5000"},
		{ID: "dx8000", Label: "DX 8000"},
		{ID: "axium", Label: "Axium"},
	}},
	{ID: "verifone", Label: "Verifone", Children: []FacetOption{
		{ID: "t650m", Label: "T650m"},
		{ID: "t650p", Label: "T650p"},
		{ID: "victa", Label: "Victa"},
	}},
	{ID: "pax", Label: "PAX", Children: []FacetOption{
		{ID: "a920max", Label: "A920 Max"},
		{ID: "a960", Label: "A960"},
		{ID: "a3700", Label: "A3700"},
	}},
	{ID: "castles", Label: "Castles", Children: []FacetOption{
		{ID: "pro", Label: "Pro"},
		{ID: "s1f3", Label: "S1F3"},
		{ID: "s1e2", Label: "S1E2"},
	}},
}

// PosConnections mixes vendor groups and standalone integrations.
var PosConnections = []FacetOption{
	{ID: "lightspeed", Label: "Lightspeed", Children: []FacetOption{
		{ID: "r_series", Label: "R Series"},
		{ID: "vend", Label: "Vend"},
		{ID: "kounta", Label: "Kounta"},
	}},
	{ID: "oracle", Label: "Oracle", Children: []FacetOption{
		{ID: "retail_xstore", Label: "Retail Xstore"},
		{ID: "micros", Label: "Micros"},
	}},
	{ID: "retail_directions", Label: "Retail Directions"},
	{ID: "ncr", Label: "NCR"},
	{ID: "redcat", Label: "Redcat"},
	{ID: "swiftpos", Label: "SwiftPOS"},
	{ID: "hl_pos", Label: "H&L POS"},
}

// VASCatalog groups value-added services by category.
var VASCatalog = []FacetOption{
	{ID: "alt_payments", Label: "Alternative Payments", Children: []FacetOption{
		{ID: "epay", Label: "Epay"},
		{ID: "afterpay", Label: "Afterpay"},
		{ID: "alipay", Label: "Alipay"},
		{ID: "wechat", Label: "WeChat"},
		{ID: "unionpay", Label: "UnionPay"},
	}},
	{ID: "loyalty", Label: "Loyalty", Children: []FacetOption{
		{ID: "qantas", Label: "Qantas"},
		{ID: "velocity", Label: "Velocity"},
		{ID: "flybuys", Label: "Flybuys"},
		{ID: "everyday", Label: "Everyday"},
		{ID: "rewards", Label: "Rewards"},
	}},
	{ID: "gift_cards", Label: "Gift Cards", Children: []FacetOption{
		{ID: "blackhawk", Label: "Blackhawk"},
		{ID: "incomm", Label: "InComm"},
		{ID: "givex", Label: "Givex"},
		{ID: "prezzee", Label: "Prezzee"},
		{ID: "flexigroup", Label: "Flexigroup"},
	}},
	{ID: "marketing", Label: "Marketing", Children: []FacetOption{
		{ID: "trurating", Label: "TruRating"},
		{ID: "yumpingo", Label: "Yumpingo"},
		{ID: "powerrewards", Label: "PowerRewards"},
	}},
	{ID: "card_offers", Label: "Card Offers", Children: []FacetOption{
		{ID: "visa_discounts", Label: "Visa Discounts"},
		{ID: "mastercard_priceless", Label: "Mastercard Priceless"},
		{ID: "amex_offers", Label: "Amex Offers"},
		{ID: "diners_club", Label: "Diners Club"},
	}},
}

// TerminalFeatures is the flat catalog of built-in terminal capabilities.
var TerminalFeatures = []FacetOption{
	{ID: "acquirer_redundancy", Label: "Acquirer Redundancy"},
	{ID: "ai_fraud", Label: "AI Fraud Detection"},
	{ID: "ai_routing", Label: "AI Routing"},
	{ID: "wifi", Label: "WiFi"},
	{ID: "analytics", Label: "Analytics"},
}

// FacetCatalog is the bundle served to the sidebar.
type FacetCatalog struct {
	Acquirers      []FacetOption `json:"acquirers"`
	OrbitTypes     []FacetOption `json:"orbitTypes"`
	PosConnections []FacetOption `json:"posConnections"`
	Hardware       []FacetOption `json:"hardware"`
	VAS            []FacetOption `json:"vas"`
	Features       []FacetOption `json:"features"`
	Statuses       []FacetOption `json:"statuses"`
}

// Catalogs returns the complete facet catalog bundle.
func Catalogs() FacetCatalog {
	statuses := make([]FacetOption, 0, len(Statuses))
	for _, s := range Statuses {
		statuses = append(statuses, FacetOption{ID: string(s), Label: string(s)})
	}
	return FacetCatalog{
		Acquirers:      Acquirers,
		OrbitTypes:     OrbitTypes,
		PosConnections: PosConnections,
		Hardware:       Hardware,
		VAS:            VASCatalog,
		Features:       TerminalFeatures,
		Statuses:       statuses,
	}
}

// VASLabel returns the display label for a VAS leaf id, or the id itself when
// it is not in the catalog.
func VASLabel(id string) string {
	for _, group := range VASCatalog {
		for _, leaf := range group.Children {
			if leaf.ID == id {
				return leaf.Label
			}
		}
	}
	return id
}

// MerchantTypes are the industries terminals are deployed into.
var MerchantTypes = []string{"Retail", "Hospitality", "Fuel", "Transport", "Healthcare"}

// MerchantNames maps each merchant type to its brand pool.
var MerchantNames = map[string][]string{
	"Retail":      {"Best Buy", "Target", "Walmart", "Kmart", "Big W", "Myer", "David Jones"},
	"Hospitality": {"Marriott", "Hilton", "Hyatt", "Accor", "Meriton", "Quest"},
	"Fuel":        {"BP", "Shell", "Caltex", "Ampol", "7-Eleven", "United"},
	"Transport":   {"Uber", "Lyft", "Didi", "Ola", "Taxi Combined", "13CABS"},
	"Healthcare":  {"Priceline", "Chemist Warehouse", "Terry White", "Amcal", "Guardian"},
}

// BusinessSuffixes complete generated merchant trading names.
var BusinessSuffixes = []string{"PTY LTD", "LTD", "Inc", "Group", "Holdings", "Corp"}

// City is a deployment location with its centroid.
type City struct {
	Name string
	Lat  float64
	Lng  float64
}

// Bounds of the serviced region; generated coordinates stay inside.
const (
	MinLatitude  = -44.0
	MaxLatitude  = -10.0
	MinLongitude = 112.5
	MaxLongitude = 154.0
)

// WeightedCities repeats major cities in proportion to fleet density so a
// uniform pick over the slice reproduces the deployment skew.
var WeightedCities = buildWeightedCities()

var cities = map[string]City{
	"Sydney":         {"Sydney", -33.8688, 151.2093},
	"Melbourne":      {"Melbourne", -37.8136, 144.9631},
	"Brisbane":       {"Brisbane", -27.4698, 153.0251},
	"Perth":          {"Perth", -31.9505, 115.8605},
	"Adelaide":       {"Adelaide", -34.9285, 138.6007},
	"Canberra":       {"Canberra", -35.2809, 149.1300},
	"Hobart":         {"Hobart", -42.8821, 147.3272},
	"Darwin":         {"Darwin", -12.4634, 130.8456},
	"Geelong":        {"Geelong", -38.1499, 144.3617},
	"Newcastle":      {"Newcastle", -32.9283, 151.7817},
	"Wollongong":     {"Wollongong", -34.4278, 150.8931},
	"Gold Coast":     {"Gold Coast", -28.0167, 153.4000},
	"Sunshine Coast": {"Sunshine Coast", -26.6500, 153.0667},
	"Townsville":     {"Townsville", -19.2589, 146.8169},
	"Cairns":         {"Cairns", -16.9186, 145.7781},
	"Toowoomba":      {"Toowoomba", -27.5598, 151.9507},
	"Ballarat":       {"Ballarat", -37.5622, 143.8503},
	"Bendigo":        {"Bendigo", -36.7570, 144.2794},
	"Launceston":     {"Launceston", -41.4545, 147.1350},
	"Mackay":         {"Mackay", -21.1411, 149.1861},
	"Rockhampton":    {"Rockhampton", -23.3783, 150.5091},
	"Albury":         {"Albury", -36.0737, 146.9135},
	"Wagga Wagga":    {"Wagga Wagga", -35.1189, 147.3699},
	"Shepparton":     {"Shepparton", -36.3805, 145.3999},
	"Coffs Harbour":  {"Coffs Harbour", -30.2963, 153.1135},
	"Dubbo":          {"Dubbo", -32.2569, 148.6011},
	"Tamworth":       {"Tamworth", -31.0833, 150.9167},
	"Mildura":        {"Mildura", -34.1852, 142.1625},
	"Orange":         {"Orange", -33.2833, 149.1000},
	"Bunbury":        {"Bunbury", -33.3271, 115.6414},
	"Geraldton":      {"Geraldton", -28.7780, 114.6144},
	"Bathurst":       {"Bathurst", -33.4190, 149.5775},
	"Gladstone":      {"Gladstone", -23.8425, 151.2550},
	"Goulburn":       {"Goulburn", -34.7516, 149.7200},
}

var cityWeights = []struct {
	name   string
	weight int
}{
	{"Sydney", 5}, {"Melbourne", 4}, {"Brisbane", 3}, {"Perth", 2},
	{"Adelaide", 2}, {"Canberra", 1}, {"Hobart", 1}, {"Darwin", 1},
	{"Gold Coast", 2}, {"Sunshine Coast", 1}, {"Townsville", 1},
	{"Newcastle", 1}, {"Wollongong", 1}, {"Geelong", 1}, {"Toowoomba", 1},
	{"Cairns", 1}, {"Ballarat", 1}, {"Bendigo", 1}, {"Launceston", 1},
	{"Mackay", 1}, {"Rockhampton", 1}, {"Albury", 1}, {"Wagga Wagga", 1},
	{"Shepparton", 1}, {"Coffs Harbour", 1}, {"Dubbo", 1}, {"Tamworth", 1},
	{"Mildura", 1}, {"Orange", 1}, {"Bunbury", 1}, {"Geraldton", 1},
	{"Bathurst", 1}, {"Gladstone", 1}, {"Goulburn", 1},
}

func buildWeightedCities() []City {
	var out []City
	for _, cw := range cityWeights {
		c := cities[cw.name]
		for i := 0; i < cw.weight; i++ {
			out = append(out, c)
		}
	}
	return out
}
