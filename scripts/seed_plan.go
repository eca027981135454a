// 从 YAML 文件导入学习计划
//
// 导入走与 PUT /api/learning-plan 相同的校验，已有计划会被整体替换。
//
// 用法: go run scripts/seed_plan.go -file scripts/sample_plan.yaml

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"quiz_progress_backend/internal/config"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/pkg/database"
	"quiz_progress_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

type planFile struct {
	UserID      string `yaml:"userId"`
	StartDate   string `yaml:"startDate"`
	Status      string `yaml:"status"`
	AcademyName string `yaml:"academyName"`
	Timezone    string `yaml:"timezone"`
	WeeklyPlans []struct {
		Week      int      `yaml:"week"`
		StudyDays []int    `yaml:"studyDays"`
		UnitIDs   []string `yaml:"unitIds"`
		UnitNames []string `yaml:"unitNames"`
	} `yaml:"weeklyPlans"`
}

func main() {
	configDir := flag.String("config", "configs", "配置文件所在目录")
	file := flag.String("file", "", "学习计划 YAML 文件")
	flag.Parse()

	if *file == "" {
		log.Fatal("缺少 -file 参数")
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}
	cfg.ForceMigrate = true

	logger.InitLogger(cfg)

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("无法读取计划文件: %v", err)
	}

	var pf planFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		log.Fatalf("解析计划文件失败: %v", err)
	}
	if pf.UserID == "" {
		log.Fatal("计划文件缺少 userId")
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	ctx := context.Background()
	in := service.PlanInput{StartDate: pf.StartDate, Status: model.PlanStatus(pf.Status)}
	for _, w := range pf.WeeklyPlans {
		in.WeeklyPlans = append(in.WeeklyPlans, service.WeeklyPlanInput{
			Week:      w.Week,
			StudyDays: w.StudyDays,
			UnitIDs:   w.UnitIDs,
			UnitNames: w.UnitNames,
		})
	}

	plans := service.NewPlanService(repository.NewPlanRepository(db))
	plan, err := plans.SavePlan(ctx, pf.UserID, in)
	if err != nil {
		log.Fatalf("导入学习计划失败: %v", err)
	}

	if pf.AcademyName != "" || pf.Timezone != "" {
		profiles, err := service.NewProfileService(repository.NewProfileRepository(db), cfg.Schedule.DefaultTimezone)
		if err != nil {
			log.Fatalf("默认时区无效: %v", err)
		}
		if _, err := profiles.UpdateProfile(ctx, pf.UserID, pf.AcademyName, pf.Timezone); err != nil {
			log.Fatalf("更新学习资料失败: %v", err)
		}
	}

	log.Printf("已导入 %s 的学习计划，共 %d 周", plan.UserID, len(plan.WeeklyPlans))
}
