package entity

type EnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Envs is an ordered list of environment variables. The platform treats it as
// an unordered set, but construction order is kept deterministic.
type Envs []EnvVar

func (e Envs) Get(name string) string {
	for _, v := range e {
		if v.Name == name {
			return v.Value
		}
	}
	return ""
}

func (e Envs) Has(name string) bool {
	for _, v := range e {
		if v.Name == name {
			return true
		}
	}
	return false
}

// Set replaces the value in place when the name exists, appends otherwise.
func (e *Envs) Set(name, value string) {
	for i, v := range *e {
		if v.Name == name {
			(*e)[i].Value = value
			return
		}
	}
	*e = append(*e, EnvVar{Name: name, Value: value})
}

func (e Envs) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, v := range e {
		m[v.Name] = v.Value
	}
	return m
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}
