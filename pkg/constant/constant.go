package constant

const (
	HeaderAuthorization = "Authorization"
	BearerScheme        = "Bearer"

	// LocalsClaimsKey is the fiber locals key under which RequireUser stores
	// the verified access-token claims.
	LocalsClaimsKey = "authClaims"
)
