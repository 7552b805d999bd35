package errx

// RegistryEntry describes a registered error code.
type RegistryEntry struct {
	Code        string
	Description string
}

// Error codes follow a stable 5-digit scheme where the first two digits are the
// domain and the last three digits are reserved for subcodes.
const (
	CodeCLI     = "70000"
	CodeBinary  = "71000"
	CodeCommand = "72000"
	CodeStatus  = "73000"
	CodeConfig  = "74000"
	CodeKube    = "75000"
)

const (
	DescCLI     = "CLI/argument validation error"
	DescBinary  = "Binary presence error"
	DescCommand = "Command error"
	DescStatus  = "Status output error"
	DescConfig  = "Configuration error"
	DescKube    = "Kubernetes API error"
)

var registryEntries = []RegistryEntry{
	{Code: CodeCLI, Description: DescCLI},
	{Code: CodeBinary, Description: DescBinary},
	{Code: CodeCommand, Description: DescCommand},
	{Code: CodeStatus, Description: DescStatus},
	{Code: CodeConfig, Description: DescConfig},
	{Code: CodeKube, Description: DescKube},
}

var registryMap = func() map[string]string {
	m := make(map[string]string, len(registryEntries))
	for _, entry := range registryEntries {
		m[entry.Code] = entry.Description
	}
	return m
}()

// ErrorRegistry returns the registered codes in deterministic order.
func ErrorRegistry() []RegistryEntry {
	entries := make([]RegistryEntry, len(registryEntries))
	copy(entries, registryEntries)
	return entries
}

// DescriptionFor returns the registry description for a code.
func DescriptionFor(code string) (string, bool) {
	desc, ok := registryMap[code]
	return desc, ok
}

// IsValidCode checks if the given error code is registered.
func IsValidCode(code string) bool {
	_, ok := registryMap[code]
	return ok
}
