package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	m "ats-backend/internal/model"
	"ats-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users & profiles
var (
	TestUserRecruiter1 m.User
	TestUserRecruiter2 m.User
	TestUserApplicant1 m.User
	TestUserApplicant2 m.User
	TestRecruiter1     m.Recruiter
	TestRecruiter2     m.Recruiter

	// Add exported plain password
	TestSeedPassword = "SeedPass123!"

	// Exported seeded jobs. TestJob2 is closed, TestJob3 belongs to recruiter 2.
	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		DBName:    dbName,
		UseConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config, zap.NewNop())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts two recruiters, two applicants and three jobs.
func seedTestData(db *DBinstanceStruct) error {
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	recruiters := []m.Recruiter{
		{
			User:         m.User{Name: "Rin Recruiter", Email: "recruiter1@example.com", Password: hashedPwd, Role: m.RoleRecruiter},
			Organization: "TechNova",
		},
		{
			User:         m.User{Name: "Ray Recruiter", Email: "recruiter2@example.com", Password: hashedPwd, Role: m.RoleRecruiter},
			Organization: "DataForge",
		},
	}
	if err := db.Create(&recruiters).Error; err != nil {
		return err
	}

	applicants := []m.Applicant{
		{
			User:       m.User{Name: "Alice Nguyen", Email: "applicant1@example.com", Password: hashedPwd, Role: m.RoleApplicant},
			Skills:     pq.StringArray{"Go", "PostgreSQL"},
			Experience: 2,
		},
		{
			User:       m.User{Name: "Bob Somsak", Email: "applicant2@example.com", Password: hashedPwd, Role: m.RoleApplicant},
			Skills:     pq.StringArray{"React"},
			Experience: 1,
		},
	}
	if err := db.Create(&applicants).Error; err != nil {
		return err
	}

	TestRecruiter1 = recruiters[0]
	TestRecruiter2 = recruiters[1]
	TestUserRecruiter1 = recruiters[0].User
	TestUserRecruiter2 = recruiters[1].User
	TestUserApplicant1 = applicants[0].User
	TestUserApplicant2 = applicants[1].User

	jobs := []m.Job{
		{
			RecruiterID:  TestUserRecruiter1.ID,
			Title:        "Backend Engineer",
			Description:  "Work on Go services and database layers.",
			Requirements: "Golang PostgreSQL Docker Kubernetes",
			Location:     "Bangkok (Hybrid)",
			Status:       m.JobStatusActive,
		},
		{
			RecruiterID:  TestUserRecruiter1.ID,
			Title:        "Data Analyst",
			Description:  "Support data cleansing and dashboard creation.",
			Requirements: "SQL; basic statistics",
			Location:     "Chiang Mai (On-site)",
			Status:       m.JobStatusClosed,
		},
		{
			RecruiterID:  TestUserRecruiter2.ID,
			Title:        "Frontend Developer",
			Description:  "Assist building component library in React.",
			Requirements: "React TypeScript",
			Location:     "Remote",
			Status:       m.JobStatusActive,
		},
	}
	if err := db.Omit(clause.Associations).Create(&jobs).Error; err != nil {
		return err
	}
	TestJob1 = jobs[0]
	TestJob2 = jobs[1]
	TestJob3 = jobs[2]

	return nil
}
