package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilsberzins2000/AnonForum/store"
	"github.com/emilsberzins2000/AnonForum/utils"
)

// respondStoreError maps the store error taxonomy onto HTTP statuses:
// validation -> 400, conflict -> 409, anything else -> 500.
func respondStoreError(ctx *gin.Context, code int, err error) {
	var ve *store.ValidationError
	if errors.As(err, &ve) {
		utils.Error(ctx, http.StatusBadRequest, code, ve.Reason)
		return
	}
	var ce *store.ConflictError
	if errors.As(err, &ce) {
		utils.Error(ctx, http.StatusConflict, code, "conflict, please retry")
		return
	}
	if utils.Sugar != nil {
		utils.Sugar.Errorf("store operation failed: %v", err)
	}
	utils.Error(ctx, http.StatusInternalServerError, code, "internal error")
}
