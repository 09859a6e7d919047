package main

import (
	"time"

	"vet-clinic/internal/platform/httpclient"
	"vet-clinic/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
		counts  = seed.DefaultCounts()
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga datos de prueba a través de la API (no borra lo existente)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if baseURL == "" {
				baseURL = "http://localhost" + a.cfg.Addr()
			}

			client, err := httpclient.New(baseURL, timeout, a.log)
			if err != nil {
				return err
			}

			sum, err := seed.New(client, counts, a.log).Run(cmd.Context())
			if err != nil {
				return err
			}

			a.log.Info().
				Int("staff", sum.Staff).
				Int("owners", sum.Owners).
				Int("pets", sum.Pets).
				Int("appointments", sum.Appointments).
				Int("treatments", sum.Treatments).
				Int("pet_treatments", sum.PetTreatments).
				Int("medications", sum.Medications).
				Int("billings", sum.Billings).
				Msg("seeding complete")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&baseURL, "base-url", "", "URL de la API (por defecto http://localhost:<puerto de la config>)")
	f.DurationVar(&timeout, "timeout", httpclient.DefaultTimeout, "timeout por request")
	f.IntVar(&counts.Staff, "staff", counts.Staff, "cantidad de staff")
	f.IntVar(&counts.Owners, "owners", counts.Owners, "cantidad de owners (1-3 mascotas cada uno)")
	f.IntVar(&counts.Appointments, "appointments", counts.Appointments, "cantidad de turnos")
	f.IntVar(&counts.Treatments, "treatments", counts.Treatments, "cantidad de tratamientos")
	return cmd
}
