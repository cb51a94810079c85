// Package shop provides the product data model and the HTTP client for the
// trolley shopping-list API.
//
// # Overview
//
// This package defines the Product record, the fixed category enumeration
// with its display labels, and the API client that performs the four
// collection operations (list, create, update, delete). It is the only
// package that talks to the network.
//
// # Architecture
//
// The package is split into two files:
//
//   - types.go: Product record, category keys and labels, copy builders
//   - client.go: HTTP client implementation and request/response handling
//
// # Client Usage
//
// Create a client using the API base address from configuration:
//
//	client, err := shop.NewClient("127.0.0.1:7602")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	products, err := client.ListProducts(ctx)
//	if err != nil {
//		log.Printf("list failed: %v", err)
//	}
//
//	id, err := client.CreateProduct(ctx, draft)
//	if err != nil {
//		log.Printf("create failed: %v", err)
//	}
//
// # API Endpoints
//
//   - GET    /products:      Full collection, in server insertion order
//   - POST   /products:      Create from a draft (no id); returns assigned id
//   - PUT    /products/{id}: Replace the full record; body acknowledged only
//   - DELETE /products/{id}: Remove the record; body acknowledged only
//
// # Trust Boundaries
//
// The client deliberately trusts very little of what the server echoes back:
//
//   - CreateProduct returns only the assigned id. The caller appends the
//     draft it already holds; other fields in the response are ignored.
//   - UpdateProduct and DeleteProduct discard the response body entirely.
//     On success the caller applies exactly the record it submitted.
//
// This keeps the local cache a function of confirmed local intent rather
// than of whatever the server chose to serialize.
//
// # Error Handling
//
// All failures surface as wrapped errors:
//
//   - Client initialization errors: invalid API base address format
//   - Network errors: connection refused, DNS failure
//   - HTTP errors: any non-2xx status from the API
//   - Deserialization errors: malformed JSON responses
//
// Example error messages:
//   - "execute request: dial tcp: connection refused"
//   - "api /products returned status 500"
//   - "decode response: unexpected end of JSON input"
//
// The client performs no retries, no backoff, and sets no explicit timeout;
// requests run on the transport's own defaults and are cancellable through
// the caller's context. Retry policy, if any, belongs to the user retrying
// the action.
//
// # Categories
//
// The category enumeration is closed for filtering and labeling purposes but
// open for storage: an unrecognized category value is kept verbatim on the
// record and rendered under the "Other" label. CategoryLabel implements that
// fallback; KnownCategory reports membership.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying http.Client
// handles connection pooling and concurrent requests internally.
package shop
