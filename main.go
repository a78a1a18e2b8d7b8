package main

import (
	"log"
	"os"

	"github.com/agusbudigame/elegance-wheels-rental-hub/routes"
	"github.com/agusbudigame/elegance-wheels-rental-hub/storage"
	"github.com/agusbudigame/elegance-wheels-rental-hub/utils"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the storefront and the admin dashboard SPA
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	// Public storefront API
	api := app.Party("/api")
	{
		api.Get("/categories", routes.GetCategories)
		api.Get("/gallery", routes.GetGallery)
		api.Get("/testimonials", routes.GetTestimonials)

		cars := api.Party("/cars")
		cars.Get("/", routes.GetCars)
		cars.Get("/{id:uint}", routes.GetCar)

		api.Post("/bookings", routes.CreateBooking)

		auth := api.Party("/auth")
		auth.Post("/register", routes.Register)
		auth.Post("/login", routes.Login)
		auth.Post("/logout", routes.Logout)
		auth.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
	}

	// Admin dashboard API
	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/stats", routes.AdminStats)
		admin.Get("/activity", routes.AdminActivity)

		admin.Get("/bookings", routes.AdminListBookings)
		admin.Get("/bookings/export", routes.AdminExportBookings)
		admin.Get("/bookings/{id:uint}", routes.AdminGetBooking)
		admin.Patch("/bookings/{id:uint}/status", routes.AdminUpdateBookingStatus)

		admin.Get("/cars", routes.AdminListCars)
		admin.Post("/cars", routes.AdminCreateCar)
		admin.Patch("/cars/{id:uint}", routes.AdminUpdateCar)
		admin.Patch("/cars/{id:uint}/availability", routes.AdminSetCarAvailability)

		admin.Get("/gallery", routes.AdminListGallery)
		admin.Post("/gallery", routes.AdminCreateGalleryItem)
		admin.Patch("/gallery/{id:uint}/feature", routes.AdminFeatureGalleryItem)

		admin.Get("/testimonials", routes.AdminListTestimonials)
		admin.Post("/testimonials", routes.AdminCreateTestimonial)
		admin.Patch("/testimonials/{id:uint}/feature", routes.AdminFeatureTestimonial)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("listening on :" + port)
	app.Listen(":" + port)
}
