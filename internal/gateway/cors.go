package gateway

// CORS header values shared by both transport surfaces.
const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderAllowMethods = "Access-Control-Allow-Methods"

	AllowedHeaders = "content-type, stripe-signature"
	AllowedMethods = "POST, OPTIONS"
)

// AllowOrigin reflects the request origin when it is on the allow-list;
// otherwise it falls back to the first allow-listed origin.
func AllowOrigin(origin string, allowlist []string) string {
	for _, allowed := range allowlist {
		if origin == allowed {
			return origin
		}
	}
	if len(allowlist) == 0 {
		return ""
	}
	return allowlist[0]
}

// CORSHeaders computes the full CORS header set for a request origin.
func CORSHeaders(origin string, allowlist []string) map[string]string {
	return map[string]string{
		HeaderAllowOrigin:  AllowOrigin(origin, allowlist),
		HeaderAllowHeaders: AllowedHeaders,
		HeaderAllowMethods: AllowedMethods,
	}
}
