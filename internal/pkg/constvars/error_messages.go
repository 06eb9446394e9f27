package constvars

// Client-facing messages. Never include internals here.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"

	ErrClientSlotNotFound             = "slot not found"
	ErrClientSlotTimeRangeInvalid     = "slot end time must be after its start time"
	ErrClientSlotNotSwappable         = "one or both slots are not swappable"
	ErrClientSlotLockedByPendingSwap  = "slot is part of a pending swap and cannot be changed"
	ErrClientSwapRequestNotFound      = "swap request not found"
	ErrClientSwapRequestResolved      = "swap request has already been resolved"
	ErrClientSwapRequestExpired       = "swap request has expired"
	ErrClientSwapRequestNotForCaller  = "only the receiver can respond to this swap request"
)

// Developer-facing messages, logged and exposed outside production only.
const (
	ErrDevValidationFailed        = "request validation failed"
	ErrDevCannotParseJSON         = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON       = "cannot convert struct or other data types to JSON"
	ErrDevServerDeadlineExceeded  = "server deadline exceeded while processing request"
	ErrDevFailedToHashPassword    = "failed to hash password"
	ErrDevInvalidCredentials      = "invalid credentials"
	ErrDevUserNotExists           = "user not exists in our system"
	ErrDevEmailAlreadyExists      = "email already exists"
	ErrDevUsernameAlreadyExists   = "username already exists"
	ErrDevPasswordsDoNotMatch     = "passwords do not match"
	ErrDevAuthTokenMissing        = "authorization token is missing"
	ErrDevAuthTokenInvalid        = "authorization token is invalid"
	ErrDevAuthSigningMethod       = "unexpected JWT signing method"
	ErrDevAuthGenerateToken       = "failed to generate JWT"
	ErrDevAuthInvalidSession      = "session not found or expired"
	ErrDevURLParamMissing         = "missing URL parameter %s"
	ErrDevGenerateShortCode       = "failed to generate short code"
	ErrDevShortCodeExhausted      = "exhausted retries generating a unique %s code"

	ErrDevSlotNotFound            = "slot not found for the given identifier and owner scope"
	ErrDevSlotTimeRangeInvalid    = "slot endTime is not strictly after startTime"
	ErrDevSlotNotSwappable        = "slot status precondition SWAPPABLE not met"
	ErrDevSlotLockedByPendingSwap = "slot is SWAP_PENDING and owned by the swap engine"
	ErrDevSwapRequestNotFound     = "swap request not found for the given code"
	ErrDevSwapRequestResolved     = "swap request status precondition PENDING not met"
	ErrDevSwapRequestExpired      = "swap request exceeded the configured pending expiry window"
	ErrDevSwapRequestNotReceiver  = "caller is not the receiver of the swap request"
	ErrDevSwapSlotMissing         = "referenced slot disappeared mid-negotiation"

	ErrDevDBFailedToFindDocument    = "failed to find document on mongodb"
	ErrDevDBFailedToInsertDocument  = "failed to insert document on mongodb"
	ErrDevDBFailedToUpdateDocument  = "failed to update document on mongodb"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document on mongodb"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents on mongodb"
	ErrDevDBStringNotObjectID       = "given string cannot be converted to mongodb ObjectID"

	ErrDevRedisSetData    = "failed to set data on redis"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
)
