package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelops/internal/config"
	"hostelops/internal/db"
	"hostelops/internal/model"
	"hostelops/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Notification{},
		&model.Complaint{},
		&model.Comment{},
		&model.Upvote{},
		&model.Announcement{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	log.Println("Clearing existing data...")
	for _, table := range []interface{}{
		&model.Upvote{}, &model.Comment{}, &model.Complaint{},
		&model.Notification{}, &model.Announcement{}, &model.User{},
	} {
		if err := gormDB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			log.Fatalf("Failed to clear table: %v", err)
		}
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	complaintRepo := repository.NewComplaintRepository(gormDB)
	announcementRepo := repository.NewAnnouncementRepository(gormDB)

	log.Println("Seeding users...")
	studentHash := mustHash("123456")
	adminHash := mustHash("admin123")

	users := []*model.User{
		{Name: "Rahul Kumar", Email: "student@hostel.com", PasswordHash: studentHash, Role: model.RoleStudent, RoomNumber: "A-101", HostelBlock: "Block A", Phone: "9876543210", IsActive: true},
		{Name: "Priya Sharma", Email: "priya@hostel.com", PasswordHash: studentHash, Role: model.RoleStudent, RoomNumber: "B-204", HostelBlock: "Block B", Phone: "9876543211", IsActive: true},
		{Name: "Admin Kumar", Email: "admin@hostel.com", PasswordHash: adminHash, Role: model.RoleAdmin, IsActive: true},
		{Name: "Amit Singh", Email: "amit@hostel.com", PasswordHash: studentHash, Role: model.RoleStudent, RoomNumber: "C-301", HostelBlock: "Block C", Phone: "9876543212", IsActive: true},
		{Name: "Sneha Patel", Email: "sneha@hostel.com", PasswordHash: studentHash, Role: model.RoleStudent, RoomNumber: "D-102", HostelBlock: "Block D", Phone: "9876543213", IsActive: true},
	}
	for _, u := range users {
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Email, err)
		}
	}
	rahul, priya, amit, sneha := users[0], users[1], users[3], users[4]

	log.Println("Seeding complaints...")
	complaints := []*model.Complaint{
		{
			StudentID: rahul.ID, StudentName: rahul.Name, StudentRoom: rahul.RoomNumber, StudentBlock: rahul.HostelBlock,
			Title: "Ceiling fan not working in room", Category: "Electrical",
			Description: "The ceiling fan has completely stopped working since 2 days. Switch is on but the fan is not rotating at all. Room is extremely hot.",
			Priority:    model.PriorityHigh, Status: model.StatusInProgress,
			AssignedTo: "Electrician Team A", AdminNote: "Electrician will visit tomorrow 10 AM. Issue is likely a capacitor failure.",
			IsPublic: true, Tags: []string{},
		},
		{
			StudentID: priya.ID, StudentName: priya.Name, StudentRoom: priya.RoomNumber, StudentBlock: priya.HostelBlock,
			Title: "Continuous water leakage from tap", Category: "Plumbing",
			Description: "The bathroom tap is continuously dripping water. The entire floor stays wet. This is wasting water and causing slip hazard.",
			Priority:    model.PriorityMedium, Status: model.StatusPending,
			IsPublic: true, Tags: []string{},
		},
		{
			StudentID: amit.ID, StudentName: amit.Name, StudentRoom: amit.RoomNumber, StudentBlock: amit.HostelBlock,
			Title: "Study chair completely broken", Category: "Furniture",
			Description: "The study chair leg has snapped off. It is dangerous to sit on. I am unable to study properly. Need replacement urgently.",
			Priority:    model.PriorityUrgent, Status: model.StatusPending,
			IsPublic: true, Tags: []string{},
		},
		{
			StudentID: rahul.ID, StudentName: rahul.Name, StudentRoom: rahul.RoomNumber, StudentBlock: rahul.HostelBlock,
			Title: "WiFi speed below 1 Mbps", Category: "Network",
			Description: "WiFi signal is extremely weak and unusable. I cannot attend online classes or submit assignments. Been like this for 3 days.",
			Priority:    model.PriorityHigh, Status: model.StatusResolved,
			AssignedTo: "Network Team", AdminNote: "Router reset and signal booster installed near Block A. Issue resolved.",
			Rating: 4, RatingNote: "Good response time but took 2 days.",
			IsPublic: true, Tags: []string{},
		},
		{
			StudentID: priya.ID, StudentName: priya.Name, StudentRoom: priya.RoomNumber, StudentBlock: priya.HostelBlock,
			Title: "Flickering room light", Category: "Electrical",
			Description: "Main room light flickers every few minutes. Very disturbing during night study hours. Already complained verbally 3 times.",
			Priority:    model.PriorityMedium, Status: model.StatusResolved,
			AssignedTo: "Electrician Team B", AdminNote: "Replaced faulty bulb holder and wiring connection. All working fine now.",
			Rating: 5, RatingNote: "Excellent service! Fixed same day.",
			IsPublic: true, Tags: []string{},
		},
	}
	for _, c := range complaints {
		if c.Status == model.StatusResolved {
			now := time.Now()
			c.ResolvedAt = &now
		}
		if err := complaintRepo.Create(ctx, c); err != nil {
			log.Fatalf("Failed to seed complaint %q: %v", c.Title, err)
		}
	}

	upvotes := []model.Upvote{
		{ComplaintID: complaints[0].ID, UserID: priya.ID},
		{ComplaintID: complaints[0].ID, UserID: amit.ID},
		{ComplaintID: complaints[1].ID, UserID: rahul.ID},
		{ComplaintID: complaints[1].ID, UserID: amit.ID},
		{ComplaintID: complaints[1].ID, UserID: sneha.ID},
		{ComplaintID: complaints[3].ID, UserID: priya.ID},
	}
	for _, u := range upvotes {
		upvote := u
		if err := complaintRepo.AddUpvote(ctx, &upvote); err != nil {
			log.Fatalf("Failed to seed upvote: %v", err)
		}
	}

	log.Println("Seeding announcements...")
	admin := users[2]
	announcements := []*model.Announcement{
		{Title: "Water Supply Disruption", Message: "Water supply will be disrupted on Sunday 10 AM - 2 PM for maintenance of the main pipeline. Please store water in advance.", Type: model.AnnouncementMaintenance, AuthorID: admin.ID, AuthorName: admin.Name, IsActive: true},
		{Title: "Electricity Maintenance Schedule", Message: "Block B and C will face scheduled power outage on Saturday 6-8 AM for transformer maintenance. We apologize for inconvenience.", Type: model.AnnouncementWarning, AuthorID: admin.ID, AuthorName: admin.Name, IsActive: true},
		{Title: "New Complaint Portal Live", Message: "We have launched the new HostelOps digital complaint system. Please use this portal to submit all maintenance complaints going forward.", Type: model.AnnouncementInfo, AuthorID: admin.ID, AuthorName: admin.Name, IsActive: true},
	}
	for _, a := range announcements {
		if err := announcementRepo.Create(ctx, a); err != nil {
			log.Fatalf("Failed to seed announcement %q: %v", a.Title, err)
		}
	}

	log.Println("Database seeded successfully")
}

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	return string(hashed)
}
