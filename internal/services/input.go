package services

import (
	"strings"

	"github.com/yungbote/academics-backend/internal/domain/academics"
)

type StudentInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type StudentPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type CourseInput struct {
	Title string `json:"title"`
}

type CoursePatch struct {
	Title *string `json:"title"`
}

type TeacherInput struct {
	Name string `json:"name"`
}

type TeacherPatch struct {
	Name *string `json:"name"`
}

type DepartmentInput struct {
	Name string `json:"name"`
}

type DepartmentPatch struct {
	Name *string `json:"name"`
}

func required(op, field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", academics.Validation(op, field+" is required")
	}
	return v, nil
}

func validEmail(op, v string) (string, error) {
	v, err := required(op, "email", v)
	if err != nil {
		return "", err
	}
	at := strings.Index(v, "@")
	if at <= 0 || at == len(v)-1 || strings.Count(v, "@") != 1 {
		return "", academics.Validation(op, "email is invalid")
	}
	return v, nil
}

// patchField validates an optional string and records it in updates.
func patchField(op, column string, v *string, updates map[string]interface{}) error {
	if v == nil {
		return nil
	}
	var (
		s   string
		err error
	)
	if column == "email" {
		s, err = validEmail(op, *v)
	} else {
		s, err = required(op, column, *v)
	}
	if err != nil {
		return err
	}
	updates[column] = s
	return nil
}
