package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/interfaces/http/middleware"
)

// callerAccount returns the wallet account set by the auth middleware
func callerAccount(c *gin.Context) string {
	account, _ := middleware.GetAccount(c)
	return account
}
