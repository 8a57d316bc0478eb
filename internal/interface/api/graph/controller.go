package graph

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

type Controller struct {
	logger *zap.Logger
	schema graphql.Schema
}

func NewController(
	r *gin.Engine,
	logger *zap.Logger,
	schema graphql.Schema,
) *Controller {
	gc := &Controller{
		logger: logger,
		schema: schema,
	}

	r.POST(RouteGraphQL, gc.GraphQLHandler)

	return gc
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLHandler executes one operation per request. Resolver errors land in
// the response's errors list with HTTP 200, the GraphQL way; only a broken
// request body is an HTTP-level failure.
func (gc *Controller) GraphQLHandler(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"errors": []gin.H{{"message": "invalid json"}}},
		)
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         gc.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.Request.Context(),
	})

	c.JSON(http.StatusOK, result)
}
