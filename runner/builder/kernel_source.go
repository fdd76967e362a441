package builder

// OKL bodies of the diffusion kernels. Every size is a preprocessor constant
// emitted by GeneratePreamble. Basis access goes through the DOF_TO_QUAD*
// and QUAD_TO_DOF* macros, which resolve either to the kernel arguments or
// to embedded constant tables.

const kernelArgs = `const int numElements,
                 const real_t *dofToQuad,
                 const real_t *dofToQuadD,
                 const real_t *quadToDof,
                 const real_t *quadToDofD,
                 const real_t *oper,
                 const real_t *solIn,
                 real_t *solOut`

const kernel2DBody = `
  for (int eb = 0; eb < numElements; eb += ELEMENT_BLOCK; @outer) {
    for (int e = eb; e < eb + ELEMENT_BLOCK; ++e; @inner) {
      if (e < numElements) {
        real_t grad[NUM_QUAD_1D][NUM_QUAD_1D][2];
        real_t gradX[MAX_1D][2];
        for (int qy = 0; qy < NUM_QUAD_1D; ++qy) {
          for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
            grad[qy][qx][0] = REAL_ZERO;
            grad[qy][qx][1] = REAL_ZERO;
          }
        }
        for (int dy = 0; dy < NUM_DOFS_1D; ++dy) {
          for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
            gradX[qx][0] = REAL_ZERO;
            gradX[qx][1] = REAL_ZERO;
          }
          for (int dx = 0; dx < NUM_DOFS_1D; ++dx) {
            const real_t s = solIn[IJK(dx, dy, e, NUM_DOFS_1D)];
            for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
              gradX[qx][0] += s * DOF_TO_QUAD(qx, dx);
              gradX[qx][1] += s * DOF_TO_QUAD_D(qx, dx);
            }
          }
          for (int qy = 0; qy < NUM_QUAD_1D; ++qy) {
            const real_t wy  = DOF_TO_QUAD(qy, dy);
            const real_t wDy = DOF_TO_QUAD_D(qy, dy);
            for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
              grad[qy][qx][0] += gradX[qx][1] * wy;
              grad[qy][qx][1] += gradX[qx][0] * wDy;
            }
          }
        }
        for (int qy = 0; qy < NUM_QUAD_1D; ++qy) {
          for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
            const int q = IJ(qx, qy, NUM_QUAD_1D);
            const real_t O11 = oper[IJKNM(0, q, e, 3, NUM_QUAD)];
            const real_t O12 = oper[IJKNM(1, q, e, 3, NUM_QUAD)];
            const real_t O22 = oper[IJKNM(2, q, e, 3, NUM_QUAD)];
            const real_t gX = grad[qy][qx][0];
            const real_t gY = grad[qy][qx][1];
            grad[qy][qx][0] = O11 * gX + O12 * gY;
            grad[qy][qx][1] = O12 * gX + O22 * gY;
          }
        }
        for (int qy = 0; qy < NUM_QUAD_1D; ++qy) {
          for (int dx = 0; dx < NUM_DOFS_1D; ++dx) {
            gradX[dx][0] = REAL_ZERO;
            gradX[dx][1] = REAL_ZERO;
          }
          for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
            const real_t gX = grad[qy][qx][0];
            const real_t gY = grad[qy][qx][1];
            for (int dx = 0; dx < NUM_DOFS_1D; ++dx) {
              gradX[dx][0] += gX * QUAD_TO_DOF_D(dx, qx);
              gradX[dx][1] += gY * QUAD_TO_DOF(dx, qx);
            }
          }
          for (int dy = 0; dy < NUM_DOFS_1D; ++dy) {
            const real_t wy  = QUAD_TO_DOF(dy, qy);
            const real_t wDy = QUAD_TO_DOF_D(dy, qy);
            for (int dx = 0; dx < NUM_DOFS_1D; ++dx) {
              solOut[IJK(dx, dy, e, NUM_DOFS_1D)] += gradX[dx][0] * wy + gradX[dx][1] * wDy;
            }
          }
        }
      }
    }
  }
`

const kernel3DBody = `
  for (int eb = 0; eb < numElements; eb += ELEMENT_BLOCK; @outer) {
    for (int e = eb; e < eb + ELEMENT_BLOCK; ++e; @inner) {
      if (e < numElements) {
        real_t grad[NUM_QUAD_1D][NUM_QUAD_1D][NUM_QUAD_1D][3];
        real_t gradXY[MAX_1D][MAX_1D][3];
        real_t gradX[MAX_1D][3];
        for (int qz = 0; qz < NUM_QUAD_1D; ++qz) {
          for (int qy = 0; qy < NUM_QUAD_1D; ++qy) {
            for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
              grad[qz][qy][qx][0] = REAL_ZERO;
              grad[qz][qy][qx][1] = REAL_ZERO;
              grad[qz][qy][qx][2] = REAL_ZERO;
            }
          }
        }
        for (int dz = 0; dz < NUM_DOFS_1D; ++dz) {
          for (int qy = 0; qy < NUM_QUAD_1D; ++qy) {
            for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
              gradXY[qy][qx][0] = REAL_ZERO;
              gradXY[qy][qx][1] = REAL_ZERO;
              gradXY[qy][qx][2] = REAL_ZERO;
            }
          }
          for (int dy = 0; dy < NUM_DOFS_1D; ++dy) {
            for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
              gradX[qx][0] = REAL_ZERO;
              gradX[qx][1] = REAL_ZERO;
            }
            for (int dx = 0; dx < NUM_DOFS_1D; ++dx) {
              const real_t s = solIn[IJKL(dx, dy, dz, e, NUM_DOFS_1D)];
              for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
                gradX[qx][0] += s * DOF_TO_QUAD(qx, dx);
                gradX[qx][1] += s * DOF_TO_QUAD_D(qx, dx);
              }
            }
            for (int qy = 0; qy < NUM_QUAD_1D; ++qy) {
              const real_t wy  = DOF_TO_QUAD(qy, dy);
              const real_t wDy = DOF_TO_QUAD_D(qy, dy);
              for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
                const real_t wx  = gradX[qx][0];
                const real_t wDx = gradX[qx][1];
                gradXY[qy][qx][0] += wDx * wy;
                gradXY[qy][qx][1] += wx * wDy;
                gradXY[qy][qx][2] += wx * wy;
              }
            }
          }
          for (int qz = 0; qz < NUM_QUAD_1D; ++qz) {
            const real_t wz  = DOF_TO_QUAD(qz, dz);
            const real_t wDz = DOF_TO_QUAD_D(qz, dz);
            for (int qy = 0; qy < NUM_QUAD_1D; ++qy) {
              for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
                grad[qz][qy][qx][0] += gradXY[qy][qx][0] * wz;
                grad[qz][qy][qx][1] += gradXY[qy][qx][1] * wz;
                grad[qz][qy][qx][2] += gradXY[qy][qx][2] * wDz;
              }
            }
          }
        }
        for (int qz = 0; qz < NUM_QUAD_1D; ++qz) {
          for (int qy = 0; qy < NUM_QUAD_1D; ++qy) {
            for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
              const int q = IJK(qx, qy, qz, NUM_QUAD_1D);
              const real_t O11 = oper[IJKNM(0, q, e, 6, NUM_QUAD)];
              const real_t O12 = oper[IJKNM(1, q, e, 6, NUM_QUAD)];
              const real_t O13 = oper[IJKNM(2, q, e, 6, NUM_QUAD)];
              const real_t O22 = oper[IJKNM(3, q, e, 6, NUM_QUAD)];
              const real_t O23 = oper[IJKNM(4, q, e, 6, NUM_QUAD)];
              const real_t O33 = oper[IJKNM(5, q, e, 6, NUM_QUAD)];
              const real_t gX = grad[qz][qy][qx][0];
              const real_t gY = grad[qz][qy][qx][1];
              const real_t gZ = grad[qz][qy][qx][2];
              grad[qz][qy][qx][0] = O11 * gX + O12 * gY + O13 * gZ;
              grad[qz][qy][qx][1] = O12 * gX + O22 * gY + O23 * gZ;
              grad[qz][qy][qx][2] = O13 * gX + O23 * gY + O33 * gZ;
            }
          }
        }
        for (int qz = 0; qz < NUM_QUAD_1D; ++qz) {
          for (int dy = 0; dy < NUM_DOFS_1D; ++dy) {
            for (int dx = 0; dx < NUM_DOFS_1D; ++dx) {
              gradXY[dy][dx][0] = REAL_ZERO;
              gradXY[dy][dx][1] = REAL_ZERO;
              gradXY[dy][dx][2] = REAL_ZERO;
            }
          }
          for (int qy = 0; qy < NUM_QUAD_1D; ++qy) {
            for (int dx = 0; dx < NUM_DOFS_1D; ++dx) {
              gradX[dx][0] = REAL_ZERO;
              gradX[dx][1] = REAL_ZERO;
              gradX[dx][2] = REAL_ZERO;
            }
            for (int qx = 0; qx < NUM_QUAD_1D; ++qx) {
              const real_t gX = grad[qz][qy][qx][0];
              const real_t gY = grad[qz][qy][qx][1];
              const real_t gZ = grad[qz][qy][qx][2];
              for (int dx = 0; dx < NUM_DOFS_1D; ++dx) {
                const real_t wx  = QUAD_TO_DOF(dx, qx);
                const real_t wDx = QUAD_TO_DOF_D(dx, qx);
                gradX[dx][0] += gX * wDx;
                gradX[dx][1] += gY * wx;
                gradX[dx][2] += gZ * wx;
              }
            }
            for (int dy = 0; dy < NUM_DOFS_1D; ++dy) {
              const real_t wy  = QUAD_TO_DOF(dy, qy);
              const real_t wDy = QUAD_TO_DOF_D(dy, qy);
              for (int dx = 0; dx < NUM_DOFS_1D; ++dx) {
                gradXY[dy][dx][0] += gradX[dx][0] * wy;
                gradXY[dy][dx][1] += gradX[dx][1] * wDy;
                gradXY[dy][dx][2] += gradX[dx][2] * wy;
              }
            }
          }
          for (int dz = 0; dz < NUM_DOFS_1D; ++dz) {
            const real_t wz  = QUAD_TO_DOF(dz, qz);
            const real_t wDz = QUAD_TO_DOF_D(dz, qz);
            for (int dy = 0; dy < NUM_DOFS_1D; ++dy) {
              for (int dx = 0; dx < NUM_DOFS_1D; ++dx) {
                solOut[IJKL(dx, dy, dz, e, NUM_DOFS_1D)] +=
                  (gradXY[dy][dx][0] + gradXY[dy][dx][1]) * wz + gradXY[dy][dx][2] * wDz;
              }
            }
          }
        }
      }
    }
  }
`
