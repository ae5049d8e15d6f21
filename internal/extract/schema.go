package extract

// Role assigns a semantic meaning to one record field position.
type Role int

const (
	Skip Role = iota
	URL
	Username
	Secret
)

// Schema maps field positions to roles, indexed by position. Record
// fields past the end of the schema are ignored. The column order of the
// source table must be known up front; nothing is read from the
// database's own catalog.
type Schema []Role

// ChromeLogins is the column layout of the Chromium "logins" table:
// origin_url, action_url, username_element, username_value,
// password_element, password_value, ...
var ChromeLogins = Schema{URL, Skip, Skip, Username, Skip, Secret}
