package types

// Method labels inferred from payload presence.
const (
	MethodGET  = "GET"
	MethodPOST = "POST"
)

// DefaultMaxExamples is the number of distinct examples kept per endpoint.
const DefaultMaxExamples = 3

// Endpoint is the rendered view of one normalized API path.
type Endpoint struct {
	Path         string   // Normalized path, e.g. /users/{id}
	Method       string   // Inferred, see MethodGET / MethodPOST
	Count        int      // Number of records grouped under Path
	AuthRequired bool     // Any record was captured with an Authorization header
	Examples     []Record // Distinct examples in first-seen order
}

// AssetDirectory lists the files requested from one directory.
type AssetDirectory struct {
	Dir   string   // Always ends with "/"
	Files []string // Sorted
}

// AssetCategory groups asset directories under one classifier label.
type AssetCategory struct {
	Label       string
	Directories []AssetDirectory // Sorted by Dir
}

// RunStats summarizes one generation run.
type RunStats struct {
	Total      int `json:"total"`       // Records read from the input
	Skipped    int `json:"skipped"`     // Records that could not be decoded
	Discarded  int `json:"discarded"`   // Records without a usable return_code
	Assets     int `json:"assets"`      // Records classified as static assets
	API        int `json:"api"`         // Records grouped under API endpoints
	Endpoints  int `json:"endpoints"`   // Distinct normalized endpoints
	AssetFiles int `json:"asset_files"` // Distinct asset filenames across all groups
}
