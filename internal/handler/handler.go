package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/hrm-dev/hr-workflow/backend/internal/config"
	"github.com/hrm-dev/hr-workflow/backend/internal/domain"
	"github.com/hrm-dev/hr-workflow/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.myInfo).Get("/my-info", h.GetMyInfo)

		r.Route("/employees", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateEmployee)
			r.Get("/", h.GetAllEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employeeInfo)
				r.Get("/", h.GetEmployee)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateEmployee)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteEmployee)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			// 打卡入口不限角色，考勤终端以任意已登录身份上报即可
			r.With(h.employeeInfo).Post("/check/{id}", h.RecordAttendance)
			r.With(h.employeeInfo).Get("/history/{id}", h.GetAttendanceHistory)
			r.With(h.employeeInfo).Get("/calendar/{id}", h.GetAttendanceCalendar)
		})

		r.Route("/work-plans", func(r chi.Router) {
			r.With(h.myInfo).Post("/", h.CreateWorkPlan)
			r.With(h.employeeInfo).Get("/employees/{id}", h.GetWorkPlansByEmployee)
			r.Route("/{planID}", func(r chi.Router) {
				r.Use(h.workPlan)
				r.Get("/", h.GetWorkPlan)
				r.With(h.myInfo).Patch("/status", h.UpdateWorkPlanStatus)
				r.With(h.myInfo).Delete("/", h.DeleteWorkPlan)
			})
		})

		r.Route("/leave-applications", func(r chi.Router) {
			r.With(h.myInfo).Post("/", h.CreateLeaveApplication)
			// 读取不做所有权过滤，和老系统保持一致，需要收紧时在这里加中间件
			r.Get("/", h.GetAllLeaveApplications)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.leaveApplication)
				r.Get("/", h.GetLeaveApplication)
				r.With(h.myInfo).Patch("/", h.UpdateLeaveApplication)
				r.With(h.myInfo).Delete("/", h.DeleteLeaveApplication)
			})
		})

		r.Get("/dashboard/stats", h.GetDashboardStats)
	})
}
