package gitsource

import "github.com/go-git/go-git/v5/config"

// UnknownIdentity is reported when the global git config cannot be
// read or leaves a field unset. The run continues either way; callers
// usually pair this with an --email override.
const UnknownIdentity = "Unknown"

// Identity resolves the invoking user's name and email from the
// global git config.
func Identity() (name, email string) {
	cfg, err := config.LoadConfig(config.GlobalScope)
	if err != nil {
		return UnknownIdentity, UnknownIdentity
	}

	name, email = cfg.User.Name, cfg.User.Email
	if name == "" {
		name = UnknownIdentity
	}
	if email == "" {
		email = UnknownIdentity
	}
	return name, email
}
