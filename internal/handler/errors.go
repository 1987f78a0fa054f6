package handler

import "fmt"

type FetchError struct {
	bucket string
	key    string
	base   error
}

func (e FetchError) Error() string {
	return fmt.Sprintf("Unable to fetch object %s from bucket %s: %v", e.key, e.bucket, e.base)
}

type DecodeError struct {
	bucket string
	key    string
	base   error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("Unable to decode object %s from bucket %s as text: %v", e.key, e.bucket, e.base)
}

type WriteError struct {
	bucket string
	key    string
	base   error
}

func (e WriteError) Error() string {
	return fmt.Sprintf("Unable to write object %s to bucket %s: %v", e.key, e.bucket, e.base)
}
