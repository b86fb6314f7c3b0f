package contextkeys

type contextKey string

// DBContextKey holds the *gorm.DB (pool or open transaction) for a request.
const DBContextKey = contextKey("db")

// Keys set on the gin context by the auth middleware.
const (
	SubjectIDKey = "subjectID"
	EmailKey     = "email"
	RoleKey      = "role"
)
