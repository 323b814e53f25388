package branch

import "strings"

// Source branch values reported by the pages.
const (
	SourceBachupally = "Bachupally"
	SourceManikonda  = "Manikonda"
	SourceUnknown    = "Unknown"
)

// Record holds the contact details of one physical branch
type Record struct {
	Phone        string `json:"phone"`         // digits with country code, wa.me ready
	DisplayPhone string `json:"display_phone"` // human readable
	Address      string `json:"address"`
}

// The two branches. Fixed at startup, never mutated.
var (
	bachupally = Record{
		Phone:        "918367677799",
		DisplayPhone: "083676 77799",
		Address:      "PLOT NO 855/A, Lahari Green Park Rd, opp. Gothik Pangea, Bowrampet, Bachupally, Hyderabad, Telangana 500090",
	}
	manikonda = Record{
		Phone:        "917337477799",
		DisplayPhone: "073374 77799",
		Address:      "Plot No: #4-13/29/3, Tanasha Nagar Huda colony, Near Baptist Church, opp. Apmas, Dream Valley Rd, Manikonda, Telangana 500089",
	}
)

// Bachupally returns the Bachupally branch record.
func Bachupally() Record { return bachupally }

// Manikonda returns the Manikonda branch record.
func Manikonda() Record { return manikonda }

// DetectSource infers which branch page a form was submitted from. The page
// marker (body class on the original pages) wins; the page address keyword is
// the fallback. Returns SourceUnknown when neither signal is present.
func DetectSource(pageMarker, pageURL string) string {
	marker := strings.ToLower(pageMarker)
	if strings.Contains(marker, "bachupally") {
		return SourceBachupally
	}
	if strings.Contains(marker, "manikonda") {
		return SourceManikonda
	}

	url := strings.ToLower(pageURL)
	if strings.Contains(url, "bachupally") {
		return SourceBachupally
	}
	if strings.Contains(url, "manikonda") {
		return SourceManikonda
	}

	return SourceUnknown
}

// Resolve picks the branch an enquiry belongs to. A preferred branch that
// names a known branch wins over the source page; when neither signal
// matches, Bachupally is the fixed default. Pure and total: every input pair
// resolves to exactly one of the two branches.
func Resolve(preferredBranch, sourceBranch string) (string, Record) {
	preferred := strings.ToLower(preferredBranch)
	if strings.Contains(preferred, "bachupally") {
		return SourceBachupally, bachupally
	}
	if strings.Contains(preferred, "manikonda") {
		return SourceManikonda, manikonda
	}

	if sourceBranch == SourceBachupally {
		return SourceBachupally, bachupally
	}
	if sourceBranch == SourceManikonda {
		return SourceManikonda, manikonda
	}

	// Default to Bachupally
	return SourceBachupally, bachupally
}
