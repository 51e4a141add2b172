package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtrack-be/internal/service"
)

type SearchController struct {
	searchService service.SearchService
}

func NewSearchController(searchService service.SearchService) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// Search handles GET /search?query=
func (sc *SearchController) Search(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	results, err := sc.searchService.Search(c.Request.Context(), userID, query)
	if err != nil {
		log.Printf("Error performing search: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error performing search"})
		return
	}

	c.JSON(http.StatusOK, results)
}
