package booking

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrMissingFirstName = errors.New("first name is required")
	ErrMissingLastName  = errors.New("last name is required")
	ErrInvalidEmail     = errors.New("invalid email address")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Requester identifies the person behind a user-path booking request. Admin
// blocks carry no Requester at all.
type Requester struct {
	firstName string
	lastName  string
	email     string
}

func NewRequester(firstName, lastName, email string) (Requester, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if firstName == "" {
		return Requester{}, ErrMissingFirstName
	}
	if lastName == "" {
		return Requester{}, ErrMissingLastName
	}
	if !emailRegex.MatchString(email) {
		return Requester{}, ErrInvalidEmail
	}

	return Requester{
		firstName: firstName,
		lastName:  lastName,
		email:     email,
	}, nil
}

func (r Requester) FirstName() string { return r.firstName }
func (r Requester) LastName() string  { return r.lastName }
func (r Requester) Email() string     { return r.email }

func (r Requester) FullName() string {
	return r.firstName + " " + r.lastName
}

type Purpose struct {
	value string
}

func NewPurpose(value string) Purpose {
	return Purpose{value: strings.TrimSpace(value)}
}

func (p Purpose) String() string {
	return p.value
}

func (p Purpose) IsEmpty() bool {
	return p.value == ""
}
