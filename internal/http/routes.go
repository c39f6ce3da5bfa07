package http

import (
	"net/http"

	"rentbaaz/internal/auth"
	"rentbaaz/internal/entity"
	"rentbaaz/internal/httpx"
	"rentbaaz/internal/mail"
	"rentbaaz/internal/usecase"
)

type RouterConfig struct {
	Tokens     *auth.Service
	Users      usecase.UserRepository
	Plans      usecase.PlanRepository
	Products   usecase.ProductRepository
	Complaints usecase.ComplaintRepository
	Mailer     mail.Sender
	HashCost   int
}

// NewRouter builds the API surface. Each route's role requirement is fixed
// here at registration time.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	authHandler := NewAuthHandler(cfg.Tokens, cfg.Users, cfg.Mailer, cfg.HashCost)
	profileHandler := NewProfileHandler(cfg.Users, cfg.HashCost)
	planHandler := NewPlanHandler(cfg.Plans, cfg.Users)
	productHandler := NewProductHandler(cfg.Products)
	complaintHandler := NewComplaintHandler(cfg.Complaints, cfg.Products, cfg.Users)
	adminHandler := NewAdminHandler(cfg.Users, cfg.Plans, cfg.Products, cfg.Complaints)

	anyRole := httpx.RequireRole(cfg.Tokens, cfg.Users, httpx.RoleAny)
	adminOnly := httpx.RequireRole(cfg.Tokens, cfg.Users, entity.RoleAdmin)
	userOnly := httpx.RequireRole(cfg.Tokens, cfg.Users, entity.RoleUser)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("GET /auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /auth/forgotPassword", authHandler.ForgotPassword)
	mux.Handle("GET /auth/logout", anyRole(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("POST /auth/newUser", adminOnly(http.HandlerFunc(authHandler.NewUser)))
	mux.Handle("GET /auth/emailAvailable", adminOnly(http.HandlerFunc(authHandler.EmailAvailable)))
	mux.Handle("GET /auth/mobileAvailable", adminOnly(http.HandlerFunc(authHandler.MobileAvailable)))
	mux.Handle("DELETE /auth/userDelete", adminOnly(http.HandlerFunc(authHandler.DeleteUser)))

	mux.Handle("GET /profile/viewProfile", anyRole(http.HandlerFunc(profileHandler.View)))
	mux.Handle("PATCH /profile/editProfile", anyRole(http.HandlerFunc(profileHandler.Edit)))
	mux.Handle("POST /profile/resetPassword", anyRole(http.HandlerFunc(profileHandler.ResetPassword)))

	mux.Handle("POST /plan/createPlan", adminOnly(http.HandlerFunc(planHandler.Create)))
	mux.Handle("DELETE /plan/removePlan", adminOnly(http.HandlerFunc(planHandler.Remove)))
	mux.Handle("PATCH /plan/modifyPlan", adminOnly(http.HandlerFunc(planHandler.Modify)))
	mux.Handle("GET /plan/getPlans", anyRole(http.HandlerFunc(planHandler.List)))
	mux.Handle("GET /plan/getUsersByPlan", adminOnly(http.HandlerFunc(planHandler.UsersByPlan)))
	mux.Handle("PATCH /plan/editUserPlan", adminOnly(http.HandlerFunc(planHandler.EditUserPlan)))
	mux.Handle("POST /plan/addPlanProducts", adminOnly(http.HandlerFunc(planHandler.AddProducts)))
	mux.Handle("DELETE /plan/deletePlanProducts", adminOnly(http.HandlerFunc(planHandler.DeleteProducts)))

	mux.Handle("POST /product/addProduct", adminOnly(http.HandlerFunc(productHandler.Add)))
	mux.Handle("DELETE /product/removeProduct", adminOnly(http.HandlerFunc(productHandler.Remove)))
	mux.Handle("GET /product/getProducts", adminOnly(http.HandlerFunc(productHandler.List)))
	mux.Handle("PATCH /product/modifyProduct", adminOnly(http.HandlerFunc(productHandler.Modify)))
	mux.Handle("POST /product/addFaults", adminOnly(http.HandlerFunc(productHandler.AddFaults)))
	mux.Handle("DELETE /product/removeFaults", adminOnly(http.HandlerFunc(productHandler.RemoveFaults)))

	mux.Handle("GET /complaint/preComplaint", userOnly(http.HandlerFunc(complaintHandler.PreComplaint)))
	mux.Handle("POST /complaint/addComplaint", userOnly(http.HandlerFunc(complaintHandler.Add)))
	mux.Handle("GET /complaint/myComplaints", userOnly(http.HandlerFunc(complaintHandler.Mine)))
	mux.Handle("DELETE /complaint/cancelComplaint", userOnly(http.HandlerFunc(complaintHandler.Cancel)))
	mux.Handle("PATCH /complaint/updateComplaintStatus", adminOnly(http.HandlerFunc(complaintHandler.UpdateStatus)))
	mux.Handle("POST /complaint/addCost", adminOnly(http.HandlerFunc(complaintHandler.AddCost)))
	mux.Handle("POST /complaint/modifyComplaint", adminOnly(http.HandlerFunc(complaintHandler.Modify)))
	mux.Handle("DELETE /complaint/cancelComplaintAdmin", adminOnly(http.HandlerFunc(complaintHandler.CancelAdmin)))
	mux.Handle("GET /complaint/activeComplaints", adminOnly(http.HandlerFunc(complaintHandler.Active)))
	mux.Handle("GET /complaint/inactiveComplaints", adminOnly(http.HandlerFunc(complaintHandler.Inactive)))
	mux.Handle("POST /complaint/userComplaints", adminOnly(http.HandlerFunc(complaintHandler.ByUser)))

	mux.Handle("GET /admin/getAllUsers", adminOnly(http.HandlerFunc(adminHandler.AllUsers)))
	mux.Handle("GET /admin/getUserDetails", adminOnly(http.HandlerFunc(adminHandler.UserDetails)))

	return mux
}
