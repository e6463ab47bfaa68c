/*
File    : goripl/builtins/http.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// This package carries the teacher's HTTP client builtins (std/http.go)
// forward; its server-side half (listen_http/create_server/handle_server)
// is intentionally not reconstructed here since this evaluator has no event
// loop to host a blocking ListenAndServe call behind a synchronous Call.
package builtins

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
)

var httpFns = []*forms.Builtin{
	b("get_http", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("get_http", args, 1); err != nil {
			return nil, err
		}
		u, err := asString("get_http", args[0])
		if err != nil {
			return nil, err
		}
		resp, err := http.Get(u)
		if err != nil {
			return nil, rerr.NewEvalError(err, "get_http failed")
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, rerr.NewEvalError(err, "failed to read response body")
		}
		return &forms.String{Value: string(body)}, nil
	}),
	b("post_http", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("post_http", args, 3); err != nil {
			return nil, err
		}
		u, _ := asString("post_http", args[0])
		contentType, _ := asString("post_http", args[1])
		body, _ := asString("post_http", args[2])
		resp, err := http.Post(u, contentType, strings.NewReader(body))
		if err != nil {
			return nil, rerr.NewEvalError(err, "post_http failed")
		}
		defer resp.Body.Close()
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, rerr.NewEvalError(err, "failed to read response body")
		}
		return &forms.String{Value: string(respBody)}, nil
	}),
	b("put_http", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("put_http", args, 3); err != nil {
			return nil, err
		}
		u, _ := asString("put_http", args[0])
		contentType, _ := asString("put_http", args[1])
		body, _ := asString("put_http", args[2])
		req, err := http.NewRequest("PUT", u, strings.NewReader(body))
		if err != nil {
			return nil, rerr.NewEvalError(err, "failed to create request")
		}
		req.Header.Set("Content-Type", contentType)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, rerr.NewEvalError(err, "put_http failed")
		}
		defer resp.Body.Close()
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, rerr.NewEvalError(err, "failed to read response body")
		}
		return &forms.String{Value: string(respBody)}, nil
	}),
	b("delete_http", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("delete_http", args, 1); err != nil {
			return nil, err
		}
		u, _ := asString("delete_http", args[0])
		req, err := http.NewRequest("DELETE", u, nil)
		if err != nil {
			return nil, rerr.NewEvalError(err, "failed to create request")
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, rerr.NewEvalError(err, "delete_http failed")
		}
		defer resp.Body.Close()
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, rerr.NewEvalError(err, "failed to read response body")
		}
		return &forms.String{Value: string(respBody)}, nil
	}),
	b("url_encode", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("url_encode", args, 1); err != nil {
			return nil, err
		}
		s, _ := asString("url_encode", args[0])
		return &forms.String{Value: url.QueryEscape(s)}, nil
	}),
	b("url_decode", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("url_decode", args, 1); err != nil {
			return nil, err
		}
		s, _ := asString("url_decode", args[0])
		decoded, err := url.QueryUnescape(s)
		if err != nil {
			return nil, rerr.NewEvalError(err, "url_decode failed")
		}
		return &forms.String{Value: decoded}, nil
	}),
}

func init() {
	RegisterPackage(newPackage("http", httpFns...))
}
