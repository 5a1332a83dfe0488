package api

import "errors"

var (
	ErrFileTooLarge       = errors.New("file exceeds the upload size limit")
	ErrFileTypeNotAllowed = errors.New("file type is not allowed")
	ErrNoFiles            = errors.New("no files to upload")
	ErrEmptyQuery         = errors.New("search keyword is empty")
	ErrNilFileContent     = errors.New("file has no content")
)
