package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	ShowNotFound       = "Show not found"
	ReviewNotFound     = "Review not found"
	PlaylistNotFound   = "Playlist not found"
	AccountNotFound    = "Cannot find account"
	CatalogUnavailable = "Show catalog is unavailable, try again later"
	//----------------------
	InvalidRefreshToken = "Invalid RefreshToken"
	InvalidToken        = "Invalid/Stale Token"
	Unauthenticated     = "Unauthorized, login required"
	AdminOnly           = "Forbidden, Admin users only"
	//----------------------
	UserPassNotMatch = "Email and password do not match"
	OldPassNotMatch  = "Current password is incorrect"
	PasswordMismatch = "Passwords do not match"
	WeakPassword     = "Password should be at least 6 characters"
	InvalidEmail     = "The email address is invalid"
	MissingFields    = "Please fill in all fields"
	UnsupportedAuth  = "Operation not supported for this sign-in provider"
	//----------------------
	BadRequestBody    = "Incorrect request body"
	InvalidShowId     = "Invalid showId"
	InvalidPlaylistId = "Invalid playlistId"
	InvalidRating     = "Rating must be between 0 and 5"
	InvalidName       = "Name cannot be empty"
	InvalidPage       = "Invalid page"
	InvalidUserId     = "Invalid userId"
	//----------------------
	EmailAlreadyExist = "That email is already in use"
	//----------------------
)
