package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vendo-io/vendo-go/internal/http"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// apiError normalizes a transport-layer error into a classified
// *vendo.Error. The transport always produces classified errors; anything
// else is a programming slip and maps to Unknown.
func apiError(err error) *vendo.Error {
	var classified *vendo.Error
	if errors.As(err, &classified) {
		return classified
	}

	return vendo.NewError(vendo.KindUnknown, err.Error())
}

// decode converts a transport outcome into a typed Result.
func decode[T any](resp *http.Response, err error, action string) vendo.Result[*T] {
	if err != nil {
		return vendo.Fail[*T](apiError(err))
	}

	var out T

	err = json.Unmarshal(resp.Body, &out)
	if err != nil {
		return vendo.Fail[*T](vendo.NewError(vendo.KindUnknown,
			fmt.Sprintf("%s: parsing response: %v", action, err)))
	}

	return vendo.Ok(&out)
}

// deleted converts a bodyless delete outcome into a Result.
func deleted(err error) vendo.Result[vendo.Void] {
	if err != nil {
		return vendo.Fail[vendo.Void](apiError(err))
	}

	return vendo.Ok(vendo.Void{})
}

// listPage performs one bounded page fetch. A non-positive limit or page is
// rejected as a Validation failure before any network call; limits above the
// server maximum are capped, matching the server's own behavior.
func listPage[T any](
	ctx context.Context,
	httpClient *http.Client,
	path string,
	page, limit int,
	query *vendo.Query,
	action string,
) vendo.Result[*vendo.Page[T]] {
	if limit <= 0 {
		return vendo.Fail[*vendo.Page[T]](vendo.NewError(vendo.KindValidation,
			"limit must be greater than zero"))
	}

	if page <= 0 {
		return vendo.Fail[*vendo.Page[T]](vendo.NewError(vendo.KindValidation,
			"page must be greater than zero"))
	}

	if limit > vendo.MaxPageSize {
		limit = vendo.MaxPageSize
	}

	values := query.Values()
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(limit))

	resp, err := httpClient.Get(ctx, path, values)

	return decode[vendo.Page[T]](resp, err, action)
}

// exportYAML drains a traversal and writes the items as one YAML document,
// returning how many were exported.
func exportYAML[T any](it *vendo.PageIterator[T], w io.Writer) vendo.Result[int] {
	items, err := it.Collect().Unpack()
	if err != nil {
		return vendo.Fail[int](err)
	}

	encoder := yaml.NewEncoder(w)

	encodeErr := encoder.Encode(items)
	if encodeErr == nil {
		encodeErr = encoder.Close()
	}

	if encodeErr != nil {
		return vendo.Fail[int](vendo.NewError(vendo.KindUnknown,
			fmt.Sprintf("encoding export: %v", encodeErr)))
	}

	return vendo.Ok(len(items))
}

// mustID panics on an empty required identifier. An empty ID is a caller
// bug, not a remote condition, so it fails before any network attempt.
func mustID(field, id string) {
	if strings.TrimSpace(id) == "" {
		panic("vendo: " + field + " must not be empty")
	}
}
