package repositories

type Repos struct {
	Job          JobRepo
	Application  ApplicationRepo
	AcceptedTask AcceptedTaskRepo
}

func New() *Repos {
	return &Repos{
		Job:          &DBJobRepo{},
		Application:  &DBApplicationRepo{},
		AcceptedTask: &DBAcceptedTaskRepo{},
	}
}
