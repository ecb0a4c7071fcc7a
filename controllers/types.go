package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/services"
)

type StandardResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Meta       interface{}     `json:"meta,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// abortWithError renders a service failure with its mapped status code.
func abortWithError(c *gin.Context, err error) {
	c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error(), "success": false})
}
