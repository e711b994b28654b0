// Package catalog provides a client for the OC Movies catalog REST API.
//
// The API exposes paginated genre and title listings plus one endpoint per
// title. This package walks those pages, bounds the result lists and
// memoises every fetched title by id so that detail lookups can skip the
// network.
//
// # Architecture
//
//   - Fetcher / HTTPFetcher: one GET per call, raw JSON out, typed errors
//   - MovieCache: insert-if-absent memoisation keyed by "mov_<id>", with a
//     completeness level so a summary is never mistaken for a detail
//   - Client: genres, counts, top lists, details and the home loader
//   - MovieView / ConsoleFormatter: display defaults and terminal output
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := catalog.NewClient(
//		"http://127.0.0.1:8000/api/v1/",
//		logger,
//		catalog.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	top, err := client.TopMovies(ctx, 6, "Drama")
//	if err != nil {
//		log.Fatal(err)
//	}
//	best, err := client.MovieDetails(ctx, top[0].ID)
//
// # Error Handling
//
// Every failure carries the URI that caused it:
//
//   - NetworkError: the server could not be reached
//   - HTTPError: the server answered with a non-2xx status
//   - MalformedResponseError: the body was not the expected JSON
//
// Use errors.As to classify them:
//
//	var httpErr *catalog.HTTPError
//	if errors.As(err, &httpErr) && httpErr.IsNotFound() {
//		// unknown title
//	}
package catalog
