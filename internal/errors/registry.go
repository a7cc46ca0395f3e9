package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Runtime errors (C001-C039)

	"C001": {
		Category: CategoryRuntime,
		Message:  "Mount target not found",
		Detail:   "The mount selector matched no element in the document. Check the selector and the page markup.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C001",
	},
	"C002": {
		Category: CategoryRuntime,
		Message:  "Root component produced no output",
		Detail:   "The root component's render returned nothing. A component declared without a render function needs a template, either set directly or adopted from the mount target's markup.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C002",
	},
	"C003": {
		Category: CategoryRuntime,
		Message:  "Application already mounted",
		Detail:   "Mount was called on an application that is still mounted. Unmount it first.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C003",
	},
	"C004": {
		Category: CategoryRuntime,
		Message:  "Handler not found",
		Detail:   "The event handler for this element was not found. The tree may have re-rendered with different handlers.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C004",
	},

	// Hydration errors (C040-C059)

	"C040": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch: element type differs",
		Detail:   "The server-rendered element type doesn't match what the client expected. The component likely renders differently on client and server.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C040",
	},
	"C041": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch: missing element",
		Detail:   "An interactive element the client expected was not present in the server-rendered markup.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C041",
	},
	"C042": {
		Category: CategoryHydration,
		Message:  "Hydration ID not found",
		Detail:   "The hydration ID referenced by an event doesn't exist in the rendered markup.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C042",
	},

	// Configuration errors (C060-C079)

	"C060": {
		Category: CategoryConfig,
		Message:  "Invalid calyx.toml",
		Detail:   "The calyx.toml configuration file is malformed.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C060",
	},
	"C061": {
		Category: CategoryConfig,
		Message:  "Missing required configuration",
		Detail:   "A required configuration value is not set.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C061",
	},
	"C062": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The configured port number is invalid or already in use.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C062",
	},

	// CLI errors (C080-C099)

	"C080": {
		Category: CategoryCLI,
		Message:  "Not a Calyx project",
		Detail:   "The current directory is not a Calyx project. Run this command from a directory with calyx.toml.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C080",
	},
	"C081": {
		Category: CategoryCLI,
		Message:  "Render failed",
		Detail:   "The page could not be rendered. Check the output for component errors.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C081",
	},

	// Deploy errors (C100-C119)

	"C100": {
		Category: CategoryDeploy,
		Message:  "Deploy bucket not configured",
		Detail:   "Static deployment requires a bucket name in the [deploy] section of calyx.toml.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C100",
	},
	"C101": {
		Category: CategoryDeploy,
		Message:  "Upload failed",
		Detail:   "One or more files could not be uploaded to the deployment bucket.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C101",
	},
	"C102": {
		Category: CategoryDeploy,
		Message:  "Build output not found",
		Detail:   "The build output directory doesn't exist. Run the render command first.",
		DocURL:   "https://calyx-ui.dev/docs/errors/C102",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
