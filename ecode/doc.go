// Package ecode defines the status code catalogs used by the response
// builder and the helpers to work with them.
//
// A catalog is a Table: a mapping from an HTTP-like status code to the
// human-readable title bound to it in responses.
//
// # Default Catalogs
//
// Success codes:
//
//	200 // "200 OK"
//	201 // "201 Created"
//	202 // "202 Accepted"
//
// Error codes cover the 4xx family, from 400 Bad Request to
// 499 Client Closed Request.
//
// # Usage
//
//	codes := ecode.SuccessCodes()
//	title, ok := codes.Title(201)
//	// title == "201 Created", ok == true
//
//	errs := ecode.ErrorCodes()
//	fmt.Println(errs.Keys())
//	// [400 401 402 ... 451 499]
//
// # Custom Catalogs
//
// Tables are plain maps and may be replaced wholesale:
//
//	custom := ecode.Table{500: "500 Internal"}
//	builder.SetAllowedErrorCodes(custom)
//
// SuccessCodes and ErrorCodes always return fresh copies, so callers are
// free to mutate what they get back.
package ecode
