package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID contextKey = "user_id"
)

const (
	RequestParamID       = "id"
	RequestParamFrom     = "from"
	RequestParamSize     = "size"
	RequestParamState    = "state"
	RequestParamText     = "text"
	RequestParamApproved = "approved"
)

const (
	DefaultValueFrom = 0
	DefaultValueSize = 10
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

// DateTimeFormat is the wire format for every timestamp: local date-time
// without a zone offset.
const (
	DateTimeFormat = "2006-01-02T15:04:05"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderSharerUserID = "X-Sharer-User-Id"
	RequestHeaderContentType  = "Content-Type"
	RequestHeaderRequestID    = "X-Request-ID"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	TopicBookingCreated       = "booking.created"
	TopicBookingStatusChanged = "booking.status_changed"
)

const (
	Empty = ""
)
