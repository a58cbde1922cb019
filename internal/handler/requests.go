package handler

import "github.com/deppfellow/tradehands/internal/repository"

// EmptyRequest is the payload of routes that read nothing from the request.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// IDRequest carries the :id path parameter. Any integer is accepted; an id
// that matches no row is a not-found outcome, not an input error.
type IDRequest struct {
	ID int64 `param:"id"`
}

func (r *IDRequest) Validate() error {
	return nil
}

func newRequest[T any]() *T {
	return new(T)
}

// idBody is the body of create and delete responses, e.g. {"user_id": 1}.
func idBody(key string, id int64) map[string]int64 {
	return map[string]int64{key: id}
}

// deletedBody turns a deletion into the {"<key>": id} response body.
func deletedBody(key string, result repository.Result[repository.Deletion], err error) (repository.Result[map[string]int64], error) {
	if err != nil || !result.Found {
		return repository.Absent[map[string]int64](), err
	}
	return repository.Found(idBody(key, result.Value.ID)), nil
}
