package api

import (
	"github.com/gofiber/fiber/v2"

	v1 "github.com/infenixDeveloper/artegallera-backend/internal/api/v1"
)

// SetupRoutes wires the public surface. Event listing, winners and chat
// reads are open; everything that moves money or mutates state sits behind
// the JWT middleware.
func SetupRoutes(app *fiber.App, handler *v1.Handler, auth fiber.Handler) {
	app.Get("/ping", handler.Pong)

	events := app.Group("/events")
	events.Get("/", handler.ListEvents)
	events.Post("/", auth, handler.CreateEvent)
	events.Get("/rounds/:id", handler.ListRoundsByEvent)
	events.Post("/round", auth, handler.CreateRound)
	events.Put("/round/winner", auth, handler.ResolveRound)
	events.Patch("/round/:id/betting-status", auth, handler.SetRoundBettingStatus)
	events.Get("/:id", handler.GetEvent)
	events.Put("/:id", auth, handler.UpdateEvent)
	events.Delete("/:id", auth, handler.DeleteEvent)
	events.Patch("/:id/betting-status", auth, handler.SetEventBettingStatus)

	betting := app.Group("/betting", auth)
	betting.Post("/", handler.CreateBet)
	betting.Get("/", handler.ListBets)
	betting.Get("/rounds/:id", handler.ListBetsByRound)
	betting.Get("/team/:team/:id_round/:id_event", handler.TotalByTeam)
	betting.Post("/married", handler.PairBets)
	betting.Get("/married/:id_event/:id_round", handler.ListMarriedBets)
	betting.Get("/report/range", handler.RangeReport)
	betting.Get("/report/car/:id_user/:id_event", handler.TransactionsReport)
	betting.Get("/report/event/:id_user", handler.EventsReport)
	betting.Get("/pdf/listAmountTransactions/:id_user/:id_event", handler.StatementPDF)
	betting.Get("/:id", handler.GetBet)
	betting.Put("/:id", handler.UpdateBet)
	betting.Delete("/:id", handler.DeleteBet)

	user := app.Group("/user", auth)
	user.Get("/", handler.ListUsers)
	user.Get("/total-amount", handler.TotalActiveBalance)
	user.Get("/export", handler.ExportUsers)
	user.Put("/balance", handler.AddBalance)
	user.Put("/withdraw-balance", handler.WithdrawBalance)
	user.Get("/chat-status/:id", handler.GetChatStatus)
	user.Patch("/chat-status/:id", handler.SetChatStatus)
	user.Get("/:id", handler.GetUser)
	user.Put("/:id", handler.UpdateUser)
	user.Delete("/:id", handler.DeactivateUser)

	messages := app.Group("/messages")
	messages.Get("/", handler.ListMessages)
	messages.Get("/general", handler.ListGeneralMessages)
	messages.Get("/event/:id", handler.ListMessagesByEvent)
	messages.Post("/", auth, handler.CreateMessage)
	messages.Post("/delete-many", auth, handler.DeleteMessages)
	messages.Delete("/:id", auth, handler.DeleteMessage)

	winners := app.Group("/winners")
	winners.Get("/", handler.ListWinners)
	winners.Get("/event/:id", handler.ListWinnersByEvent)
	winners.Get("/total-earnings/:id", handler.TotalEarnings)
	winners.Get("/total-amount/:id", handler.EventTotalAmount)

	promotions := app.Group("/promotions", auth)
	promotions.Get("/", handler.ListPromotions)
	promotions.Patch("/:id/status", handler.SetPromotionStatus)
}
