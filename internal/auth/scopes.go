package auth

// Known OAuth scopes used by the nutrition service.
const (
	ScopePlansWrite   = "plans:write"
	ScopePlansRead    = "plans:read"
	ScopeProfileWrite = "profile:write"
)
