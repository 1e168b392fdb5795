package repository

import "errors"

var ErrNoDocuments = errors.New("no documents found")
