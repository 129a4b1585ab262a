package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/hrm-dev/hr-workflow/backend/internal/config"
	"github.com/hrm-dev/hr-workflow/backend/internal/repository"
	"github.com/hrm-dev/hr-workflow/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机员工, 2: 插入随机打卡记录, 3: 插入随机工作计划, 4: 插入随机请假申请)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的员工数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				employee, err := utils.GenerateRandomEmployee(cfg.Seed.Employee.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("无法生成随机员工", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateEmployee(employee); err != nil {
					slog.Error("无法插入员工", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入员工成功", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的天数")
			return
		}

		employees, err := repo.GetAllEmployees()
		if err != nil {
			slog.Error("无法获取所有员工", slog.String("error", err.Error()))
			return
		}

		cnt := 0
		for _, employee := range employees {
			for _, event := range utils.GenerateRandomAttendanceEvents(employee.ID, n) {
				if err := repo.InsertAttendanceEvent(event); err != nil {
					slog.Error("无法插入打卡记录", slog.String("error", err.Error()))
					continue
				}

				cnt++
			}
		}

		slog.Info("插入打卡记录成功", slog.Int("count", cnt))
	case 3:
		if n <= 0 {
			slog.Error("请输入合法的工作计划数量")
			return
		}

		employees, err := repo.GetAllEmployees()
		if err != nil {
			slog.Error("无法获取所有员工", slog.String("error", err.Error()))
			return
		}
		if len(employees) == 0 {
			slog.Error("数据库中没有员工，请先插入员工")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			// 随机选一个员工
			employee := employees[rand.Intn(len(employees))]

			plan := utils.GenerateRandomWorkPlan(employee.ID)
			if err := repo.CreateWorkPlan(plan); err != nil {
				slog.Error("无法插入工作计划", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入工作计划成功", slog.Int("count", n-cnt))
	case 4:
		if n <= 0 {
			slog.Error("请输入合法的请假申请数量")
			return
		}

		employees, err := repo.GetAllEmployees()
		if err != nil {
			slog.Error("无法获取所有员工", slog.String("error", err.Error()))
			return
		}
		if len(employees) == 0 {
			slog.Error("数据库中没有员工，请先插入员工")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			employee := employees[rand.Intn(len(employees))]

			application := utils.GenerateRandomLeaveApplication(employee.ID)
			if err := repo.CreateLeaveApplication(application); err != nil {
				slog.Error("无法插入请假申请", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入请假申请成功", slog.Int("count", n-cnt))
	default:
		slog.Error("指定的操作非法")
	}
}
