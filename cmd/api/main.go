package main

import (
	"fmt"
	"net/http"

	"github.com/yashxjain/hrsmile-backend-go/internal/config"
	appHTTP "github.com/yashxjain/hrsmile-backend-go/internal/handler/http"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/database"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/jwt"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/oauth"
	"github.com/yashxjain/hrsmile-backend-go/internal/repository/postgresql"
	attendanceService "github.com/yashxjain/hrsmile-backend-go/internal/service/attendance"
	authService "github.com/yashxjain/hrsmile-backend-go/internal/service/auth"
	employeeService "github.com/yashxjain/hrsmile-backend-go/internal/service/employee"
	expenseService "github.com/yashxjain/hrsmile-backend-go/internal/service/expense"
	holidayService "github.com/yashxjain/hrsmile-backend-go/internal/service/holiday"
	leaveService "github.com/yashxjain/hrsmile-backend-go/internal/service/leave"
	notificationService "github.com/yashxjain/hrsmile-backend-go/internal/service/notification"
	policyService "github.com/yashxjain/hrsmile-backend-go/internal/service/policy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchEventRepo := postgresql.NewPunchEventRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, jwtService, googleService)
	attendanceSvc := attendanceService.NewAttendanceService(db, punchEventRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo)
	expenseSvc := expenseService.NewExpenseService(db, expenseRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo)
	policySvc := policyService.NewPolicyService(db, policyRepo)
	notificationSvc := notificationService.NewNotificationService(db, notificationRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Expense:      appHTTP.NewExpenseHandler(expenseSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Policy:       appHTTP.NewPolicyHandler(policySvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
