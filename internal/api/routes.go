package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	// Session routes are registered ahead of the passcode middleware.
	session := api.Group("/session")
	session.Post("", handler.CreateSession)
	session.Delete("", handler.DeleteSession)

	protected := api.Group("", handler.PasscodeRequired)
	protected.Get("/catalog", handler.Catalog)
	protected.Post("/lifecycle/open", handler.AppOpened)

	settings := protected.Group("/settings")
	settings.Put("/passcode", handler.UpdatePasscode)
	settings.Delete("/passcode", handler.ClearPasscode)

	medications := protected.Group("/medications")
	medications.Get("", handler.ListMedications)
	medications.Post("", handler.CreateMedication)
	medications.Get("/:id", handler.GetMedication)
	medications.Delete("/:id", handler.DeleteMedication)
	medications.Delete("/:id/doses/:index", handler.RemoveDose)

	doses := protected.Group("/doses")
	doses.Get("", handler.GetDoseBoard)
	doses.Get("/now", handler.GetCurrentDoseBoard)
	doses.Post("/outcome", handler.RecordOutcome)

	protected.Get("/logs", handler.GetLogs)

	emotions := protected.Group("/emotions")
	emotions.Post("", handler.CheckIn)
	emotions.Get("", handler.ListEmotions)
	emotions.Get("/summary", handler.EmotionSummary)

	meals := protected.Group("/meals")
	meals.Get("/week", handler.GetMealWeek)
	meals.Put("/:date", handler.RecordMeal)
	meals.Get("/:date", handler.GetMeal)

	protected.Get("/summary", handler.GetSummary)
}
