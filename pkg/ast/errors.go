package ast

import "errors"

var ErrInvalidType = errors.New("ast: type reference is missing a kind or a wrapped type")
