// Copyright 2017 The oksvg Authors. All rights reserved.
// created: 2/12/2017 by S.R.Wiley

package svgvector

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedElement is returned for an element that would need to be
	// drawn but has no path equivalent, such as text or image.
	ErrUnsupportedElement = errors.New("unsupported element")
	// ErrInvalidValue is returned for an attribute or property value that
	// does not follow its grammar.
	ErrInvalidValue = errors.New("invalid value")

	errParamMismatch  = fmt.Errorf("%w: param mismatch", ErrInvalidValue)
	errCommandUnknown = fmt.Errorf("%w: unknown command", ErrInvalidValue)
	errZeroLengthID   = fmt.Errorf("%w: zero length id", ErrInvalidValue)
)

// ElementError reports the element that caused a parse to fail.
type ElementError struct {
	Tag string
	ID  string
	Err error
}

func (e *ElementError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("svg <%s id=%q>: %v", e.Tag, e.ID, e.Err)
	}
	return fmt.Sprintf("svg <%s>: %v", e.Tag, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// invalid wraps a bad value for the named attribute or property.
func invalid(name, value string) error {
	return fmt.Errorf("%w: %s=%q", ErrInvalidValue, name, value)
}

// wrapElement attaches el to err unless err already names an element.
func wrapElement(el *element, err error) error {
	if err == nil {
		return nil
	}
	var ee *ElementError
	if errors.As(err, &ee) {
		return err
	}
	return &ElementError{Tag: el.Name.Local, ID: el.ID(), Err: err}
}
