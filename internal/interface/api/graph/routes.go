package graph

const (
	// api
	RouteAPIv1 = "/api/v1"

	// single GraphQL endpoint, every query and mutation goes through it
	RouteGraphQL = "/graphql"

	// ops
	RouteHealth  = RouteAPIv1 + "/healthz"
	RouteMetrics = RouteAPIv1 + "/metrics"
)
