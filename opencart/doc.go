// Package opencart provides a client for the OpenCart Product API.
//
// The Product API is the storefront's administrative HTTP surface for
// products, attributes, attribute groups and categories. This package builds
// the authenticated requests, normalizes the server's inconsistent HTML
// entity encoding, recovers JSON payloads wrapped in PHP diagnostic noise,
// and surfaces a small typed error taxonomy.
//
// # Architecture
//
// The package is organized into a few components:
//
//   - Client: request building, response cleaning and envelope validation
//   - Response: the common envelope every endpoint returns
//   - API: interface definition for testability
//   - Errors: typed failures with classification methods
//
// # Usage
//
// Create a client with the store URL and API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := opencart.NewClient(
//		"https://shop.example.com",
//		"your-api-key",
//		logger,
//		opencart.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	resp, err := client.SearchProducts(ctx, "laptop", 0, 20)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !resp.Success {
//		log.Fatalf("server refused: %s", resp.Error)
//	}
//	for _, product := range resp.DataList() {
//		fmt.Println(product["name"])
//	}
//
// Construction performs no network I/O. A well-formed envelope with
// success=false is returned as data, not as an error; callers branch on
// Response.Success.
//
// # Error Handling
//
// Operations fail with one of four types:
//
//   - ValidationError: a local precondition failed, nothing was sent
//   - TransportError: connection, DNS or timeout failure
//   - HTTPError: non-2xx status, with IsNotFound/IsUnauthorized helpers
//   - InvalidResponseError: 2xx body that is not a usable envelope
//
// Classify with errors.As:
//
//	var httpErr *opencart.HTTPError
//	if errors.As(err, &httpErr) && httpErr.IsNotFound() {
//		// handle missing record
//	}
//
// No error is retried internally; retry policy belongs to the caller.
package opencart
