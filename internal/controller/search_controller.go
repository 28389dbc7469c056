package controller

import (
	"hr-knowledge-be/internal/dto"
	"hr-knowledge-be/internal/pkg/serverutils"
	"hr-knowledge-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
}

func NewSearchController(searchService service.ISearchService) ISearchController {
	return &searchController{
		searchService: searchService,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Search)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	req := dto.SearchRequest{
		Query: ctx.Query("q", ""),
		Limit: ctx.QueryInt("limit", 0),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	results := c.searchService.Search(ctx.Context(), req.Query, req.Limit)

	res := &dto.SearchResponse{
		Query:   req.Query,
		Count:   len(results),
		Results: results,
	}
	return ctx.JSON(serverutils.SuccessResponse("Search results", res))
}
