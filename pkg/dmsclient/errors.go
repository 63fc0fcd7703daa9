// Package dmsclient implements the DMS adapter: the sole component
// that reads or writes documents and entities in the external
// document-management service, including atomic workflow-tag transitions.
package dmsclient

import "errors"

var (
	// ErrTransient indicates a retryable failure: network error or HTTP
	// 5xx/429. Callers should back off and retry.
	ErrTransient = errors.New("dmsclient: transient external error")

	// ErrPermanent indicates a non-retryable failure: HTTP 4xx other than
	// 429. Auth failures are fatal for the whole pipeline.
	ErrPermanent = errors.New("dmsclient: permanent external error")

	// ErrDocumentNotFound indicates the DMS returned 404 for a specific
	// document; the document is abandoned, not the whole pipeline.
	ErrDocumentNotFound = errors.New("dmsclient: document not found")

	// ErrAuth indicates the DMS rejected credentials; fatal for the whole
	// pipeline.
	ErrAuth = errors.New("dmsclient: authentication failed")
)
