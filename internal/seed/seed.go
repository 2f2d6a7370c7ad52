// Package seed загружает учебный контент из YAML-фикстур через сервисный слой.
package seed

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/service"
)

// Fixture корневой документ YAML
type Fixture struct {
	Doctors  []DoctorFixture  `yaml:"doctors"`
	Subjects []SubjectFixture `yaml:"subjects"`
}

type DoctorFixture struct {
	Name string `yaml:"name"`
}

type SubjectFixture struct {
	Name   string         `yaml:"name"`
	MCQs   []QuizFixture  `yaml:"mcqs"`
	Videos []VideoFixture `yaml:"videos"`
}

type QuizFixture struct {
	Title     string            `yaml:"title"`
	IsFree    bool              `yaml:"is_free"`
	Logo      string            `yaml:"logo"`
	Questions []QuestionFixture `yaml:"questions"`
}

type QuestionFixture struct {
	Text    string          `yaml:"text"`
	Options []OptionFixture `yaml:"options"`
}

type OptionFixture struct {
	Text    string `yaml:"text"`
	Correct bool   `yaml:"correct"`
}

type VideoFixture struct {
	Title    string `yaml:"title"`
	URL      string `yaml:"url"`
	Duration int    `yaml:"duration"`
	IsFree   bool   `yaml:"is_free"`
	Doctor   string `yaml:"doctor"` // имя врача из секции doctors
}

// Parse читает фикстуру. Неизвестные ключи считаются ошибкой.
func Parse(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("ошибка разбора YAML: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	doctors := make(map[string]bool, len(f.Doctors))
	for _, d := range f.Doctors {
		doctors[strings.TrimSpace(d.Name)] = true
	}
	for _, s := range f.Subjects {
		for _, v := range s.Videos {
			if v.Doctor != "" && !doctors[strings.TrimSpace(v.Doctor)] {
				return fmt.Errorf("subject %q, video %q: doctor %q is not declared in doctors", s.Name, v.Title, v.Doctor)
			}
		}
		for _, q := range s.MCQs {
			for _, question := range q.Questions {
				correct := 0
				for _, o := range question.Options {
					if o.Correct {
						correct++
					}
				}
				if correct > 1 {
					return fmt.Errorf("mcq %q, question %q: more than one correct option", q.Title, question.Text)
				}
			}
		}
	}
	return nil
}

// CatalogWriter часть CatalogService, нужная загрузчику
type CatalogWriter interface {
	ListSubjects(ctx context.Context) ([]entity.Subject, error)
	CreateSubject(ctx context.Context, name string) (*entity.Subject, error)
	ListDoctors(ctx context.Context) ([]entity.Doctor, error)
	CreateDoctor(ctx context.Context, name string) (*entity.Doctor, error)
}

type QuizWriter interface {
	CreateQuiz(ctx context.Context, in service.QuizInput) (*entity.Quiz, error)
}

type QuestionWriter interface {
	CreateQuestion(ctx context.Context, in service.QuestionInput) (*entity.Question, error)
}

type VideoWriter interface {
	CreateVideo(ctx context.Context, in service.VideoInput) (*entity.Video, error)
}

// Stats итог загрузки
type Stats struct {
	Doctors         int
	Subjects        int
	SkippedSubjects int
	Quizzes         int
	Questions       int
	Options         int
	Videos          int
}

// Loader создает записи из фикстуры через сервисы
type Loader struct {
	catalog   CatalogWriter
	quizzes   QuizWriter
	questions QuestionWriter
	videos    VideoWriter
}

// NewLoader создает новый загрузчик фикстур
func NewLoader(catalog CatalogWriter, quizzes QuizWriter, questions QuestionWriter, videos VideoWriter) *Loader {
	return &Loader{catalog: catalog, quizzes: quizzes, questions: questions, videos: videos}
}

// Load создает врачей и предметы с содержимым. Уже существующие врачи переиспользуются,
// а предметы с существующим именем пропускаются целиком, так что повторная загрузка ничего не дублирует.
func (l *Loader) Load(ctx context.Context, f *Fixture) (Stats, error) {
	var stats Stats

	doctorIDs, err := l.loadDoctors(ctx, f.Doctors, &stats)
	if err != nil {
		return stats, err
	}

	existing, err := l.catalog.ListSubjects(ctx)
	if err != nil {
		return stats, err
	}
	subjectNames := make(map[string]bool, len(existing))
	for _, s := range existing {
		subjectNames[s.Name] = true
	}

	for _, sf := range f.Subjects {
		name := strings.TrimSpace(sf.Name)
		if subjectNames[name] {
			log.Printf("[Seed] Предмет %q уже существует, пропускаем", name)
			stats.SkippedSubjects++
			continue
		}

		subject, err := l.catalog.CreateSubject(ctx, name)
		if err != nil {
			return stats, fmt.Errorf("subject %q: %w", name, err)
		}
		subjectNames[name] = true
		stats.Subjects++

		for _, qf := range sf.MCQs {
			if err := l.loadQuiz(ctx, subject.ID, qf, &stats); err != nil {
				return stats, fmt.Errorf("subject %q: %w", name, err)
			}
		}
		for _, vf := range sf.Videos {
			if err := l.loadVideo(ctx, subject.ID, vf, doctorIDs, &stats); err != nil {
				return stats, fmt.Errorf("subject %q: %w", name, err)
			}
		}
	}

	log.Printf("[Seed] Загружено: врачей=%d, предметов=%d (пропущено %d), MCQ=%d, вопросов=%d, вариантов=%d, видео=%d",
		stats.Doctors, stats.Subjects, stats.SkippedSubjects, stats.Quizzes, stats.Questions, stats.Options, stats.Videos)
	return stats, nil
}

func (l *Loader) loadDoctors(ctx context.Context, doctors []DoctorFixture, stats *Stats) (map[string]uint, error) {
	existing, err := l.catalog.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(existing)+len(doctors))
	for _, d := range existing {
		ids[d.Name] = d.ID
	}

	for _, df := range doctors {
		name := strings.TrimSpace(df.Name)
		if _, ok := ids[name]; ok {
			continue
		}
		doctor, err := l.catalog.CreateDoctor(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("doctor %q: %w", name, err)
		}
		ids[name] = doctor.ID
		stats.Doctors++
	}
	return ids, nil
}

func (l *Loader) loadQuiz(ctx context.Context, subjectID uint, qf QuizFixture, stats *Stats) error {
	quiz, err := l.quizzes.CreateQuiz(ctx, service.QuizInput{
		SubjectID: &subjectID,
		Title:     &qf.Title,
		IsFree:    &qf.IsFree,
		Logo:      &qf.Logo,
	})
	if err != nil {
		return fmt.Errorf("mcq %q: %w", qf.Title, err)
	}
	stats.Quizzes++

	for _, question := range qf.Questions {
		in := service.QuestionInput{QuizID: &quiz.ID, Text: strPtr(question.Text)}
		for _, o := range question.Options {
			in.Options = append(in.Options, service.OptionInput{Text: strPtr(o.Text), IsCorrect: boolPtr(o.Correct)})
		}
		created, err := l.questions.CreateQuestion(ctx, in)
		if err != nil {
			return fmt.Errorf("mcq %q, question %q: %w", qf.Title, question.Text, err)
		}
		stats.Questions++
		stats.Options += len(created.Options)
	}
	return nil
}

func (l *Loader) loadVideo(ctx context.Context, subjectID uint, vf VideoFixture, doctorIDs map[string]uint, stats *Stats) error {
	in := service.VideoInput{
		SubjectID:         &subjectID,
		Title:             strPtr(vf.Title),
		VideoURL:          strPtr(vf.URL),
		DurationInMinutes: &vf.Duration,
		IsFree:            boolPtr(vf.IsFree),
	}
	if vf.Doctor != "" {
		id := doctorIDs[strings.TrimSpace(vf.Doctor)]
		in.DoctorID = &id
		in.SetDoctor = true
	}
	if _, err := l.videos.CreateVideo(ctx, in); err != nil {
		return fmt.Errorf("video %q: %w", vf.Title, err)
	}
	stats.Videos++
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
