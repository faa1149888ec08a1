// Package model contains data structure for storing initially provided query, input-source and search mode
package model

// IgnoreCaseEnv - переменная окружения, включающая поиск без учета регистра (имя сравнивается без учета регистра)
const IgnoreCaseEnv = "IGNORE_CASE"

// Config - хранит параметры запуска, после инициализации не меняется и передается по значению
type Config struct {
	Query      string // строка для поиска, ищется как есть - не регулярка
	FilePath   string // путь к файлу для чтения
	IgnoreCase bool   // i — игнорировать регистр (флаг или IGNORE_CASE=true)
}
