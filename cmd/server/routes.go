package main

import (
	"github.com/gin-gonic/gin"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/interfaces/http/handlers"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/interfaces/http/middleware"
)

type routeDeps struct {
	adminHandler   *handlers.AdminHandler
	oracleHandler  *handlers.OracleHandler
	poolHandler    *handlers.PoolHandler
	swapHandler    *handlers.SwapHandler
	escrowHandler  *handlers.EscrowHandler
	nftHandler     *handlers.NftHandler
	listingHandler *handlers.ListingHandler
	traitHandler   *handlers.TraitHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Admin routes (protected, authority-checked in the usecases)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware)
		{
			admin.POST("/platform", d.adminHandler.InitializePlatform)
			admin.PATCH("/platform/fee", d.adminHandler.UpdatePlatformFee)
			admin.POST("/projects", d.adminHandler.CreateProject)
			admin.POST("/projects/:projectId/collections", d.adminHandler.CreateCollection)
			admin.POST("/collections/:collectionId/fusion-config", d.adminHandler.CreateFusionConfig)
		}

		// Project price and pool routes (protected)
		projects := v1.Group("/projects")
		projects.Use(d.authMiddleware)
		{
			projects.POST("/:projectId/price/feed", d.oracleHandler.UpdatePriceFromFeed)
			projects.POST("/:projectId/price/dex", d.oracleHandler.UpdatePriceFromDex)
			projects.POST("/:projectId/price/manual", d.oracleHandler.SetManualPrice)
			projects.GET("/:projectId/price/fresh", d.oracleHandler.CheckFresh)
			projects.GET("/:projectId/price/usd-to-tokens", d.oracleHandler.ConvertUsdToTokens)
			projects.GET("/:projectId/price/tokens-to-usd", d.oracleHandler.ConvertTokensToUsd)

			projects.POST("/:projectId/pool", d.poolHandler.SetupLiquidityPool)
			projects.POST("/:projectId/pool/inactivity-check", d.poolHandler.CheckLpInactivity)
		}

		// Collection trait routes (protected)
		collections := v1.Group("/collections")
		collections.Use(d.authMiddleware)
		{
			collections.POST("/:collectionId/trait-types", d.traitHandler.CreateTraitType)
			collections.GET("/:collectionId/trait-types", d.traitHandler.ListTraitTypes)
			collections.POST("/:collectionId/trait-config", d.traitHandler.CreateTraitConfig)
		}

		// Swap routes (protected, idempotent mutations)
		swaps := v1.Group("/swaps")
		swaps.Use(d.authMiddleware)
		{
			swaps.POST("", middleware.IdempotencyMiddleware(), d.swapHandler.SwapTokenForNft)
		}

		// NFT routes (protected)
		nfts := v1.Group("/nfts")
		nfts.Use(d.authMiddleware)
		{
			nfts.POST("", middleware.IdempotencyMiddleware(), d.nftHandler.MintNft)
			nfts.POST("/fuse", middleware.IdempotencyMiddleware(), d.nftHandler.FuseNfts)
			nfts.GET("", d.nftHandler.ListMyNfts)
			nfts.GET("/:mint", d.nftHandler.GetNft)
			nfts.GET("/:mint/traits", d.nftHandler.GetNftTraits)
			nfts.GET("/:mint/cooldown", d.swapHandler.GetRemainingCooldown)
			nfts.POST("/:mint/redeem", middleware.IdempotencyMiddleware(), d.swapHandler.RedeemNftForToken)
		}

		// Escrow routes (protected)
		escrows := v1.Group("/escrows")
		escrows.Use(d.authMiddleware)
		{
			escrows.POST("", middleware.IdempotencyMiddleware(), d.escrowHandler.CreateTokenEscrow)
			escrows.POST("/:nftMint/close", d.escrowHandler.CloseTokenEscrow)
			escrows.POST("/:nftMint/redeem", middleware.IdempotencyMiddleware(), d.escrowHandler.RedeemEscrowToken)
		}

		// Listing routes (public read, protected write)
		listings := v1.Group("/listings")
		{
			listings.GET("", d.listingHandler.ListActiveListings)
			listings.POST("", d.authMiddleware, d.listingHandler.CreateListing)
			listings.POST("/:nftMint/cancel", d.authMiddleware, d.listingHandler.CancelListing)
		}
	}
}
