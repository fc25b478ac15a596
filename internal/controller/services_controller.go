package controller

import (
	"github.com/gofiber/fiber/v2"

	"sib-chatbot-be/internal/dto"
	"sib-chatbot-be/internal/pkg/serverutils"
)

type IServicesController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
}

type servicesController struct{}

func NewServicesController() IServicesController {
	return &servicesController{}
}

// bankingServices is the static product catalog shown alongside the chat UI.
var bankingServices = []dto.ServiceInfo{
	{Id: 1, Name: "Savings Accounts", Description: "Various savings account options with competitive interest rates", Icon: "💰", Category: "accounts"},
	{Id: 2, Name: "Home Loans", Description: "Home loan solutions with flexible terms", Icon: "🏠", Category: "loans"},
	{Id: 3, Name: "Personal Loans", Description: "Quick personal loans for your needs", Icon: "💳", Category: "loans"},
	{Id: 4, Name: "Credit Cards", Description: "Premium credit cards with rewards", Icon: "💸", Category: "cards"},
	{Id: 5, Name: "Fixed Deposits", Description: "Secure investment options with guaranteed returns", Icon: "📈", Category: "investments"},
	{Id: 6, Name: "Current Accounts", Description: "Business and individual current accounts", Icon: "🏢", Category: "accounts"},
	{Id: 7, Name: "Digital Banking", Description: "Online and mobile banking services", Icon: "📱", Category: "digital"},
	{Id: 8, Name: "Customer Support", Description: "24/7 customer service and support", Icon: "📞", Category: "support"},
}

var serviceCategories = []dto.ServiceCategory{
	{Id: "accounts", Name: "Accounts", Icon: "🏦"},
	{Id: "loans", Name: "Loans", Icon: "💰"},
	{Id: "cards", Name: "Cards", Icon: "💳"},
	{Id: "investments", Name: "Investments", Icon: "📈"},
	{Id: "digital", Name: "Digital Services", Icon: "📱"},
	{Id: "support", Name: "Support", Icon: "🎧"},
}

func (c *servicesController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/services/v1")
	h.Get("", c.List)
	h.Get("categories", c.Categories)
}

func (c *servicesController) List(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Banking services", dto.ServicesResponse{
		Services: bankingServices,
		Total:    len(bankingServices),
	}))
}

func (c *servicesController) Categories(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Service categories", dto.ServiceCategoriesResponse{
		Categories: serviceCategories,
	}))
}
