package routes

import (
    "os"
    "time"

    "backend/controllers"
    "backend/middlewares"

    "github.com/gin-contrib/cors"
    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    corsConfig := cors.Config{
        AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
        AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
        AllowCredentials: true,
        MaxAge:           12 * time.Hour,
    }
    if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
        corsConfig.AllowOrigins = []string{frontend}
    } else {
        corsConfig.AllowAllOrigins = true
    }
    r.Use(cors.New(corsConfig))

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Public catalogue routes
    food := r.Group("/food")
    {
        food.GET("/groups", controllers.ListFoodGroups)
        food.GET("/groups/:id/foods", controllers.ListFoodsByGroup)
        food.GET("/:id", controllers.GetFood)
        food.GET("/:id/nutrients", controllers.GetFoodNutrients)
    }

    // Public calculators
    calc := r.Group("/calculator")
    {
        calc.POST("/bmi", controllers.CalculateBMI)
        calc.POST("/calories", controllers.CalculateCalories)
    }

    // Payment proxy + health, kept under /api for the frontend
    api := r.Group("/api")
    {
        api.GET("/health", controllers.Health)
        api.POST("/create-checkout-session", controllers.CreateCheckoutSession)
        api.POST("/verify-payment", controllers.VerifyPayment)
        api.POST("/webhook", controllers.StripeWebhook)
        api.GET("/payment-details/:sessionId", controllers.PaymentDetails)
    }

    // Protected user routes
    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware())
    {
        user.GET("/profile", controllers.GetProfile)
        user.PUT("/profile", controllers.UpdateProfile)
    }

    // Protected cart routes
    cart := r.Group("/cart")
    cart.Use(middlewares.AuthMiddleware())
    {
        cart.GET("", controllers.GetCart)
        cart.POST("", controllers.AddToCart)
        cart.PATCH("/:id", controllers.UpdateCartItem)
        cart.DELETE("/:id", controllers.RemoveCartItem)
        cart.DELETE("", controllers.ClearCart)
        cart.GET("/prefill/meal-plan", controllers.PrefillMealPlan)
        cart.GET("/prefill/recipe", controllers.PrefillRecipe)
    }

    // Protected meal plan routes
    plans := r.Group("/meal-plans")
    plans.Use(middlewares.AuthMiddleware())
    {
        plans.POST("", controllers.CreateMealPlan)
        plans.GET("", controllers.ListMealPlans)
        plans.GET("/:id", controllers.GetMealPlan)
        plans.PUT("/:id", controllers.UpdateMealPlan)
        plans.DELETE("/:id", controllers.DeleteMealPlan)
    }

    // Protected recipe routes
    recipes := r.Group("/recipes")
    recipes.Use(middlewares.AuthMiddleware())
    {
        recipes.POST("", controllers.CreateRecipe)
        recipes.GET("", controllers.ListRecipes)
        recipes.GET("/:id", controllers.GetRecipe)
        recipes.PUT("/:id", controllers.UpdateRecipe)
        recipes.DELETE("/:id", controllers.DeleteRecipe)
    }

    return r
}
