// Package server implements a small development server for the trolley API.
//
// It keeps the product list in memory, preserving insertion order, and
// exposes the same REST surface the client expects:
//
//	GET    /products        list all products
//	POST   /products        create a product, server assigns the id
//	PUT    /products/{id}   replace a product in place
//	DELETE /products/{id}   remove a product
//
// The same routes are also mounted under /api/products for deployments that
// place the API behind a path prefix. State lives only in process memory and
// is lost on restart; the -seed flag of trolleyd starts it with a demo list.
package server
