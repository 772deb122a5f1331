package service

import "errors"

// Error is the single error type every service operation returns. It carries
// only a display message; the boundary layer shows the message and nothing
// else.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Display messages surfaced to clients.
const (
	MsgArticleNotFound    = "An article with such ID doesn't exist."
	MsgTitleExists        = "An article with the same title already exists."
	MsgUserNotFound       = "User not found."
	MsgUpdateNotPermitted = "You are not authorized to update this article."
	MsgCantUpdate         = "You can't edit articles that are already published."
	MsgCommentNotFound    = "Comment does not exist."
	MsgCommentNotYours    = "You are not authorized to delete this comment."
	MsgEmailRegistered    = "This email is already used by another account."
	MsgInvalidCredentials = "Invalid credentials."
	MsgInvalidSport       = "Unknown sport category."
	MsgNoImage            = "No image provided."
	MsgImageTooLarge      = "Image size could not be bigger than 2MB."
	MsgBadImageFormat     = "Only .jpeg and .png image formats are allowed."
)

func fail(message string) error {
	return &Error{Message: message}
}

// wrap coerces any failure into *Error so callers see one opaque shape.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	return &Error{Message: err.Error()}
}
